package models

// ShiftType is a named work period
type ShiftType string

const (
	ShiftDay   ShiftType = "day"
	ShiftNight ShiftType = "night"
	ShiftShort ShiftType = "short"
)

// KnownShiftType reports whether t is one of the defined shift types
func KnownShiftType(t ShiftType) bool {
	switch t {
	case ShiftDay, ShiftNight, ShiftShort:
		return true
	}
	return false
}

// CalendarClass distinguishes weekday and weekend shift tables
type CalendarClass string

const (
	ClassWeekday CalendarClass = "weekday"
	ClassWeekend CalendarClass = "weekend"
)

// EmploymentType distinguishes full-time and part-time staff
type EmploymentType string

const (
	Fulltime EmploymentType = "fulltime"
	Parttime EmploymentType = "parttime"
)

// Employee represents one schedulable person and their constraints.
// Dates are month-relative "M/D" strings with no leading zeros and no year;
// the year/month context travels separately (see MonthContext).
type Employee struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Type             EmploymentType         `json:"type"`
	FixedDaysOff     []int                  `json:"fixedDaysOff"` // weekday indices, 0=Sunday
	UnavailableDates []string               `json:"unavailableDates"`
	SpecialDates     map[string][]ShiftType `json:"specialDates,omitempty"`   // date -> allowed shifts; empty list means no restriction
	AvailableDates   []string               `json:"availableDates,omitempty"` // if non-empty, the ONLY dates this employee may work
	PreferredShifts  []ShiftType            `json:"preferredShifts"`
	// MaxNightShiftsPerWeek is the wire field the reference data uses; it is
	// folded into WeeklyCap lookups for the night shift when set.
	MaxNightShiftsPerWeek int               `json:"maxNightShiftsPerWeek,omitempty"`
	WeeklyShiftCaps       map[ShiftType]int `json:"weeklyShiftCaps,omitempty"`
	// SpecialShiftTimes overrides the shift-time table for this employee,
	// keyed by calendar class then shift type.
	SpecialShiftTimes map[CalendarClass]map[ShiftType]ShiftTime `json:"specialShiftTimes,omitempty"`
	Color             string                                    `json:"color,omitempty"`
}

// WeeklyCap returns the employee's per-ISO-week cap for a shift type,
// and whether one is configured.
func (e *Employee) WeeklyCap(t ShiftType) (int, bool) {
	if cap, ok := e.WeeklyShiftCaps[t]; ok && cap > 0 {
		return cap, true
	}
	if t == ShiftNight && e.MaxNightShiftsPerWeek > 0 {
		return e.MaxNightShiftsPerWeek, true
	}
	return 0, false
}

// Prefers reports whether the employee lists t among their permitted shifts
func (e *Employee) Prefers(t ShiftType) bool {
	for _, s := range e.PreferredShifts {
		if s == t {
			return true
		}
	}
	return false
}

// ShiftTime holds the clock times and nominal hours of one shift
type ShiftTime struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Hours float64 `json:"hours"`
}

// ShiftTimes is the class -> shift -> time table
type ShiftTimes map[CalendarClass]map[ShiftType]ShiftTime

// For resolves the shift time for an employee, consulting the employee's
// per-class override map before the shared table.
func (st ShiftTimes) For(emp *Employee, class CalendarClass, shift ShiftType) (ShiftTime, bool) {
	if emp != nil {
		if byShift, ok := emp.SpecialShiftTimes[class]; ok {
			if t, ok := byShift[shift]; ok {
				return t, true
			}
		}
	}
	byShift, ok := st[class]
	if !ok {
		return ShiftTime{}, false
	}
	t, ok := byShift[shift]
	return t, ok
}

// StaffingRequirements maps calendar class -> shift type -> required headcount
type StaffingRequirements map[CalendarClass]map[ShiftType]int

// Assignment binds one shift slot to one employee
type Assignment struct {
	Employee string `json:"employee"`
}

// Schedule maps "M/D" date keys to the assignments for that date.
// A date with no assignments has no entry at all.
type Schedule map[string]map[ShiftType]Assignment

// Set records an assignment for (date, shift), overwriting any prior one
func (s Schedule) Set(date string, shift ShiftType, employeeID string) {
	day, ok := s[date]
	if !ok {
		day = make(map[ShiftType]Assignment)
		s[date] = day
	}
	day[shift] = Assignment{Employee: employeeID}
}

// Clear removes the assignment for (date, shift). Clearing a slot that was
// never set is a no-op. The date entry is dropped once its last shift goes.
func (s Schedule) Clear(date string, shift ShiftType) {
	day, ok := s[date]
	if !ok {
		return
	}
	delete(day, shift)
	if len(day) == 0 {
		delete(s, date)
	}
}

// AssignedTo reports whether employeeID works any shift on date
func (s Schedule) AssignedTo(date string, employeeID string) bool {
	for _, a := range s[date] {
		if a.Employee == employeeID {
			return true
		}
	}
	return false
}

// SpecialDates holds a month's special-date sets. Holidays affect pay-rate
// accounting only; closed dates suppress staffing requirements entirely;
// adjusted dates carry a free-text note for the hours-adjustment hook.
type SpecialDates struct {
	Holidays []string          `json:"holidays"`
	Closed   []string          `json:"closed"`
	Adjusted map[string]string `json:"adjusted"`
}

// IsClosed reports whether date is in the closed set
func (sd *SpecialDates) IsClosed(date string) bool {
	if sd == nil {
		return false
	}
	for _, d := range sd.Closed {
		if d == date {
			return true
		}
	}
	return false
}

// IsHoliday reports whether date is in the holiday set
func (sd *SpecialDates) IsHoliday(date string) bool {
	if sd == nil {
		return false
	}
	for _, d := range sd.Holidays {
		if d == date {
			return true
		}
	}
	return false
}

// Violation reports one unmet staffing requirement
type Violation struct {
	Date      string    `json:"date"`
	ShiftType ShiftType `json:"shift_type"`
	Required  int       `json:"required"`
}

// RunWarning reports one over-long consecutive-work run
type RunWarning struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	RunLength  int    `json:"run_length"`
}

// SelectionRule is one row of the assignment priority table. When a slot's
// (class, shift) matches, candidates are tried in PreferIDs order before
// falling back to list order. Class "" matches both calendar classes.
type SelectionRule struct {
	Class CalendarClass `json:"class,omitempty"`
	Shift ShiftType     `json:"shift"`
	// RequirePreference restricts candidates to employees whose preferred
	// shifts include the slot's shift type, falling back to the unrestricted
	// candidate list only when that subset is empty.
	RequirePreference bool     `json:"requirePreference,omitempty"`
	PreferIDs         []string `json:"preferIds,omitempty"`
}

// Matches reports whether the rule applies to a (class, shift) slot
func (r SelectionRule) Matches(class CalendarClass, shift ShiftType) bool {
	if r.Shift != shift {
		return false
	}
	return r.Class == "" || r.Class == class
}

// Policy is the ordered priority table consulted by the assignment engine
type Policy struct {
	Rules []SelectionRule `json:"rules"`
}

// RuleFor returns the first rule matching (class, shift), or nil
func (p Policy) RuleFor(class CalendarClass, shift ShiftType) *SelectionRule {
	for i := range p.Rules {
		if p.Rules[i].Matches(class, shift) {
			return &p.Rules[i]
		}
	}
	return nil
}

// EmployeeStats is one row of the monthly summary
type EmployeeStats struct {
	EmployeeID   string         `json:"employee_id"`
	Name         string         `json:"name"`
	Type         EmploymentType `json:"type"`
	WorkDays     int            `json:"work_days,omitempty"`
	OffDays      int            `json:"off_days,omitempty"`
	ShiftCount   int            `json:"shift_count"`
	RegularHours float64        `json:"regular_hours"`
	HolidayHours float64        `json:"holiday_hours"`
	TotalHours   float64        `json:"total_hours"`
}

// MonthContext is the year/month pair carried alongside month-relative date
// keys on the wire. Month is 0-indexed (0 = January), matching the persisted
// data this API round-trips.
type MonthContext struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}
