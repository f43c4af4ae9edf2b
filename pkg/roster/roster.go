// Package roster implements the shift assignment and validation engine:
// eligibility evaluation, deterministic auto-assignment, weekly quota
// tracking, staffing validation, and consecutive-work detection. Every
// operation is a pure computation over one month's data; the engine holds
// no state between calls beyond the inputs it was constructed with.
package roster

import (
	"fmt"

	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/arnavshah/roster-api-go/pkg/models"
)

// shiftOrder fixes the iteration order of requirement maps so that two runs
// over identical inputs produce identical schedules.
var shiftOrder = []models.ShiftType{models.ShiftDay, models.ShiftShort, models.ShiftNight}

// Roster evaluates one month against one employee set, requirement table,
// and selection policy.
type Roster struct {
	Month        calendar.Month
	Employees    []models.Employee
	Requirements models.StaffingRequirements
	Policy       models.Policy

	byID map[string]*models.Employee
}

// New builds a Roster, failing fast on malformed input: duplicate or empty
// employee ids, unknown shift types or employment classes, out-of-range
// weekday indices. Business-rule outcomes are never errors; these are.
func New(month calendar.Month, employees []models.Employee, reqs models.StaffingRequirements, policy models.Policy) (*Roster, error) {
	if month.M < 1 || month.M > 12 {
		return nil, fmt.Errorf("month %d out of range 1..12", month.M)
	}

	byID := make(map[string]*models.Employee, len(employees))
	for i := range employees {
		emp := &employees[i]
		if emp.ID == "" {
			return nil, fmt.Errorf("employee %q has an empty id", emp.Name)
		}
		if _, dup := byID[emp.ID]; dup {
			return nil, fmt.Errorf("duplicate employee id %q", emp.ID)
		}
		if emp.Type != models.Fulltime && emp.Type != models.Parttime {
			return nil, fmt.Errorf("employee %q: unknown employment type %q", emp.ID, emp.Type)
		}
		for _, d := range emp.FixedDaysOff {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("employee %q: weekday index %d out of range 0..6", emp.ID, d)
			}
		}
		for _, s := range emp.PreferredShifts {
			if !models.KnownShiftType(s) {
				return nil, fmt.Errorf("employee %q: unknown shift type %q", emp.ID, s)
			}
		}
		for date, shifts := range emp.SpecialDates {
			for _, s := range shifts {
				if !models.KnownShiftType(s) {
					return nil, fmt.Errorf("employee %q: unknown shift type %q on %s", emp.ID, s, date)
				}
			}
		}
		byID[emp.ID] = emp
	}

	for class, byShift := range reqs {
		if class != models.ClassWeekday && class != models.ClassWeekend {
			return nil, fmt.Errorf("unknown calendar class %q in staffing requirements", class)
		}
		for s, n := range byShift {
			if !models.KnownShiftType(s) {
				return nil, fmt.Errorf("unknown shift type %q in staffing requirements", s)
			}
			if n < 0 {
				return nil, fmt.Errorf("negative headcount %d for %s %s", n, class, s)
			}
		}
	}

	for _, rule := range policy.Rules {
		if !models.KnownShiftType(rule.Shift) {
			return nil, fmt.Errorf("unknown shift type %q in selection policy", rule.Shift)
		}
	}

	return &Roster{
		Month:        month,
		Employees:    employees,
		Requirements: reqs,
		Policy:       policy,
		byID:         byID,
	}, nil
}

// Employee returns the employee with the given id, or nil
func (r *Roster) Employee(id string) *models.Employee {
	return r.byID[id]
}

// requiredShifts returns the shift types required for a calendar class in
// the fixed canonical order, paired with their headcounts.
func (r *Roster) requiredShifts(class models.CalendarClass) []models.ShiftType {
	byShift := r.Requirements[class]
	out := make([]models.ShiftType, 0, len(byShift))
	for _, s := range shiftOrder {
		if _, ok := byShift[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
