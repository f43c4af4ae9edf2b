package roster

import (
	"fmt"
	"strings"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

// Rule identifies which eligibility check disqualified an employee
type Rule string

const (
	RuleFixedDayOff     Rule = "fixed_day_off"
	RuleUnavailableDate Rule = "unavailable_date"
	RuleDateRestricted  Rule = "date_shift_restricted"
	RuleNotOnAllowList  Rule = "not_on_allowed_dates"
	RuleShiftNotAllowed Rule = "shift_not_permitted"
	RuleFulltimeDayOnly Rule = "fulltime_day_only"
)

// Ineligibility explains why an employee cannot take a shift
type Ineligibility struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// CheckEligibility runs the eligibility rule chain for one employee against
// one (date, shift) slot and returns the first violated rule, or nil when
// the employee may take the shift. The checks run in a fixed order so the
// returned reason is stable; the boolean outcome does not depend on order.
func CheckEligibility(emp *models.Employee, dateKey string, dayOfWeek int, shift models.ShiftType) *Ineligibility {
	for _, off := range emp.FixedDaysOff {
		if off == dayOfWeek {
			return &Ineligibility{
				Rule:    RuleFixedDayOff,
				Message: fmt.Sprintf("%s has a fixed day off on %s", emp.Name, dayNames[dayOfWeek]),
			}
		}
	}

	for _, d := range emp.UnavailableDates {
		if d == dateKey {
			return &Ineligibility{
				Rule:    RuleUnavailableDate,
				Message: fmt.Sprintf("%s is unavailable on %s", emp.Name, dateKey),
			}
		}
	}

	// An empty allowed-shift list means no restriction for that date.
	if allowed, ok := emp.SpecialDates[dateKey]; ok && len(allowed) > 0 {
		found := false
		names := make([]string, 0, len(allowed))
		for _, s := range allowed {
			names = append(names, string(s))
			if s == shift {
				found = true
			}
		}
		if !found {
			return &Ineligibility{
				Rule:    RuleDateRestricted,
				Message: fmt.Sprintf("%s may only work %s on %s", emp.Name, strings.Join(names, " or "), dateKey),
			}
		}
	}

	if len(emp.AvailableDates) > 0 {
		found := false
		for _, d := range emp.AvailableDates {
			if d == dateKey {
				found = true
				break
			}
		}
		if !found {
			return &Ineligibility{
				Rule:    RuleNotOnAllowList,
				Message: fmt.Sprintf("%s only works on specific dates", emp.Name),
			}
		}
	}

	if !emp.Prefers(shift) {
		return &Ineligibility{
			Rule:    RuleShiftNotAllowed,
			Message: fmt.Sprintf("%s does not work the %s shift", emp.Name, shift),
		}
	}

	if emp.Type == models.Fulltime && shift != models.ShiftDay {
		return &Ineligibility{
			Rule:    RuleFulltimeDayOnly,
			Message: "full-time staff work the day shift only",
		}
	}

	return nil
}

// IsEligible is the boolean form of CheckEligibility
func IsEligible(emp *models.Employee, dateKey string, dayOfWeek int, shift models.ShiftType) bool {
	return CheckEligibility(emp, dateKey, dayOfWeek, shift) == nil
}

// EligibleEmployees returns the ids of all employees eligible for a
// (day, shift) slot, in employee list order. List order equals the employee
// set's insertion order, which is the assignment tiebreak contract.
func (r *Roster) EligibleEmployees(day int, shift models.ShiftType) []string {
	dateKey := r.Month.DateKey(day)
	dow := r.Month.DayOfWeek(day)

	var out []string
	for i := range r.Employees {
		if IsEligible(&r.Employees[i], dateKey, dow, shift) {
			out = append(out, r.Employees[i].ID)
		}
	}
	return out
}
