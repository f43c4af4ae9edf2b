package roster

import "github.com/arnavshah/roster-api-go/pkg/models"

// HoursAdjuster is the extension point for adjusted-hours dates: given the
// date's free-text note and the nominal hours, it returns the hours to book.
// A nil adjuster books the nominal hours unchanged.
type HoursAdjuster func(dateKey string, shift models.ShiftType, note string, hours float64) float64

// Summarize computes the monthly per-employee summary. Full-time staff get
// work-day and off-day counts (fixed days off and unavailable dates count as
// off regardless of the schedule). Part-time staff get shift counts and
// hours, split into regular and holiday hours, with per-employee shift-time
// overrides and the adjusted-hours hook applied uniformly.
func (r *Roster) Summarize(schedule models.Schedule, shiftTimes models.ShiftTimes, special *models.SpecialDates, adjust HoursAdjuster) []models.EmployeeStats {
	out := make([]models.EmployeeStats, 0, len(r.Employees))
	days := r.Month.Days()

	for i := range r.Employees {
		emp := &r.Employees[i]
		stats := models.EmployeeStats{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Type:       emp.Type,
		}

		if emp.Type == models.Fulltime {
			for day := 1; day <= days; day++ {
				if r.isDayOff(emp, day) {
					stats.OffDays++
				} else {
					stats.WorkDays++
				}
			}
		}

		for day := 1; day <= days; day++ {
			dateKey := r.Month.DateKey(day)
			class := r.Month.Class(day)
			for _, shift := range shiftOrder {
				a, ok := schedule[dateKey][shift]
				if !ok || a.Employee != emp.ID {
					continue
				}
				stats.ShiftCount++

				t, ok := shiftTimes.For(emp, class, shift)
				if !ok {
					continue
				}
				hours := t.Hours
				if special != nil && adjust != nil {
					if note, ok := special.Adjusted[dateKey]; ok {
						hours = adjust(dateKey, shift, note, hours)
					}
				}
				if special.IsHoliday(dateKey) {
					stats.HolidayHours += hours
				} else {
					stats.RegularHours += hours
				}
			}
		}
		stats.TotalHours = stats.RegularHours + stats.HolidayHours

		out = append(out, stats)
	}

	return out
}

func (r *Roster) isDayOff(emp *models.Employee, day int) bool {
	dow := r.Month.DayOfWeek(day)
	for _, off := range emp.FixedDaysOff {
		if off == dow {
			return true
		}
	}
	dateKey := r.Month.DateKey(day)
	for _, d := range emp.UnavailableDates {
		if d == dateKey {
			return true
		}
	}
	return false
}
