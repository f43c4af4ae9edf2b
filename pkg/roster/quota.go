package roster

import "github.com/arnavshah/roster-api-go/pkg/models"

// UnderWeeklyLimit reports whether assigning emp one more shift of the given
// type on day would stay within their per-ISO-week cap. Employees without a
// configured cap for the shift type are always under the limit. The week
// window is clamped to the month; weekly accounting does not look across
// month boundaries.
func (r *Roster) UnderWeeklyLimit(emp *models.Employee, shift models.ShiftType, day int, schedule models.Schedule) bool {
	cap, ok := emp.WeeklyCap(shift)
	if !ok {
		return true
	}

	weekStart := r.Month.ISOWeekStart(day)
	weekEnd := weekStart + 6
	if weekStart < 1 {
		weekStart = 1
	}
	if last := r.Month.Days(); weekEnd > last {
		weekEnd = last
	}

	count := 0
	for d := weekStart; d <= weekEnd; d++ {
		if a, ok := schedule[r.Month.DateKey(d)][shift]; ok && a.Employee == emp.ID {
			count++
		}
	}
	return count < cap
}
