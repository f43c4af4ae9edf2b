package roster

import "github.com/arnavshah/roster-api-go/pkg/models"

// Generate produces a complete schedule for the month. It is a full
// overwrite: nothing from any prior schedule survives. For each day and each
// shift type the day's calendar class requires, it takes the eligible
// employees in list order, drops anyone at their weekly cap for the shift
// type, and picks one per the selection policy. A slot with no candidates is
// left unfilled; the validator reports those later. Closed dates get no
// shifts at all.
//
// Two calls with identical inputs produce identical schedules.
func (r *Roster) Generate(special *models.SpecialDates) models.Schedule {
	schedule := make(models.Schedule)

	for day := 1; day <= r.Month.Days(); day++ {
		dateKey := r.Month.DateKey(day)
		if special.IsClosed(dateKey) {
			continue
		}
		class := r.Month.Class(day)

		for _, shift := range r.requiredShifts(class) {
			if r.Requirements[class][shift] <= 0 {
				continue
			}
			if id, ok := r.pick(day, class, shift, schedule); ok {
				schedule.Set(dateKey, shift, id)
			}
		}
	}

	return schedule
}

// pick selects one employee for a (day, shift) slot, or reports that the
// slot cannot be filled.
func (r *Roster) pick(day int, class models.CalendarClass, shift models.ShiftType, schedule models.Schedule) (string, bool) {
	candidates := r.EligibleEmployees(day, shift)

	// Weekly caps are filtered out up front, so a named-priority candidate
	// who is over quota falls through to the next candidate naturally.
	filtered := candidates[:0:0]
	for _, id := range candidates {
		if r.UnderWeeklyLimit(r.byID[id], shift, day, schedule) {
			filtered = append(filtered, id)
		}
	}
	if len(filtered) == 0 {
		return "", false
	}

	pool := filtered
	if rule := r.Policy.RuleFor(class, shift); rule != nil {
		if rule.RequirePreference {
			var sub []string
			for _, id := range pool {
				if r.byID[id].Prefers(shift) {
					sub = append(sub, id)
				}
			}
			if len(sub) > 0 {
				pool = sub
			}
		}
		for _, want := range rule.PreferIDs {
			for _, id := range pool {
				if id == want {
					return id, true
				}
			}
		}
	}

	return pool[0], true
}
