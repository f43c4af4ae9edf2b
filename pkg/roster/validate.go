package roster

import "github.com/arnavshah/roster-api-go/pkg/models"

// Validate checks a (possibly hand-edited) schedule against the staffing
// requirements and returns one violation per unmet (date, shift) slot, in
// date order. Closed dates are exempt even when the requirement table lists
// a nonzero headcount. Eligibility of existing assignments is deliberately
// not checked here; callers validate manual edits through CheckEligibility
// at edit time.
func (r *Roster) Validate(schedule models.Schedule, special *models.SpecialDates) []models.Violation {
	violations := []models.Violation{}

	for day := 1; day <= r.Month.Days(); day++ {
		dateKey := r.Month.DateKey(day)
		if special.IsClosed(dateKey) {
			continue
		}
		class := r.Month.Class(day)

		for _, shift := range r.requiredShifts(class) {
			required := r.Requirements[class][shift]
			if required <= 0 {
				continue
			}
			if _, ok := schedule[dateKey][shift]; !ok {
				violations = append(violations, models.Violation{
					Date:      dateKey,
					ShiftType: shift,
					Required:  required,
				})
			}
		}
	}

	return violations
}
