package roster

import (
	"testing"

	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/arnavshah/roster-api-go/pkg/models"
)

func parttime(id string, shifts ...models.ShiftType) models.Employee {
	return models.Employee{
		ID:              id,
		Name:            "Employee " + id,
		Type:            models.Parttime,
		PreferredShifts: shifts,
	}
}

func TestCheckEligibility_FixedDayOff(t *testing.T) {
	emp := parttime("X", models.ShiftDay)
	emp.FixedDaysOff = []int{3}

	got := CheckEligibility(&emp, "11/5", 3, models.ShiftDay)
	if got == nil || got.Rule != RuleFixedDayOff {
		t.Errorf("Expected fixed_day_off violation, got %+v", got)
	}
	if CheckEligibility(&emp, "11/6", 4, models.ShiftDay) != nil {
		t.Error("Expected eligibility on a non-off weekday")
	}
}

func TestCheckEligibility_UnavailableDate(t *testing.T) {
	emp := parttime("X", models.ShiftDay)
	emp.UnavailableDates = []string{"11/26"}

	got := CheckEligibility(&emp, "11/26", 3, models.ShiftDay)
	if got == nil || got.Rule != RuleUnavailableDate {
		t.Errorf("Expected unavailable_date violation, got %+v", got)
	}
}

func TestCheckEligibility_SpecialDateRestriction(t *testing.T) {
	emp := parttime("X", models.ShiftDay, models.ShiftNight)
	emp.SpecialDates = map[string][]models.ShiftType{
		"3/13": {models.ShiftNight},
	}

	if CheckEligibility(&emp, "3/13", 4, models.ShiftNight) != nil {
		t.Error("Expected night eligibility on the restricted date")
	}
	got := CheckEligibility(&emp, "3/13", 4, models.ShiftDay)
	if got == nil || got.Rule != RuleDateRestricted {
		t.Errorf("Expected date_shift_restricted violation for day shift, got %+v", got)
	}
	// Any other date: both shifts fine
	if CheckEligibility(&emp, "3/14", 5, models.ShiftDay) != nil {
		t.Error("Expected day eligibility on an unrestricted date")
	}
	if CheckEligibility(&emp, "3/14", 5, models.ShiftNight) != nil {
		t.Error("Expected night eligibility on an unrestricted date")
	}
}

func TestCheckEligibility_EmptySpecialDateListIsNoRestriction(t *testing.T) {
	emp := parttime("X", models.ShiftDay)
	emp.SpecialDates = map[string][]models.ShiftType{
		"11/5": {},
	}

	if got := CheckEligibility(&emp, "11/5", 3, models.ShiftDay); got != nil {
		t.Errorf("Expected an empty allowed-shift list to mean no restriction, got %+v", got)
	}
}

func TestCheckEligibility_AllowList(t *testing.T) {
	emp := parttime("X", models.ShiftNight)
	emp.AvailableDates = []string{"11/8", "11/22"}

	if CheckEligibility(&emp, "11/8", 6, models.ShiftNight) != nil {
		t.Error("Expected eligibility on a listed date")
	}
	got := CheckEligibility(&emp, "11/9", 0, models.ShiftNight)
	if got == nil || got.Rule != RuleNotOnAllowList {
		t.Errorf("Expected not_on_allowed_dates violation, got %+v", got)
	}
}

func TestCheckEligibility_ShiftNotPermitted(t *testing.T) {
	emp := parttime("X", models.ShiftDay)

	got := CheckEligibility(&emp, "11/5", 3, models.ShiftNight)
	if got == nil || got.Rule != RuleShiftNotAllowed {
		t.Errorf("Expected shift_not_permitted violation, got %+v", got)
	}
}

func TestCheckEligibility_FulltimeDayOnly(t *testing.T) {
	emp := models.Employee{
		ID:              "A",
		Name:            "Staff A",
		Type:            models.Fulltime,
		PreferredShifts: []models.ShiftType{models.ShiftDay, models.ShiftNight},
	}

	if CheckEligibility(&emp, "11/5", 3, models.ShiftDay) != nil {
		t.Error("Expected full-time day-shift eligibility")
	}
	got := CheckEligibility(&emp, "11/5", 3, models.ShiftNight)
	if got == nil || got.Rule != RuleFulltimeDayOnly {
		t.Errorf("Expected fulltime_day_only violation, got %+v", got)
	}
}

func TestEligibleEmployees_ListOrder(t *testing.T) {
	employees := []models.Employee{
		parttime("P1", models.ShiftDay),
		parttime("P2", models.ShiftDay),
		parttime("P3", models.ShiftNight),
	}

	r, err := New(calendar.Month{Year: 2025, M: 11}, employees, nil, models.Policy{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := r.EligibleEmployees(5, models.ShiftDay)
	if len(got) != 2 || got[0] != "P1" || got[1] != "P2" {
		t.Errorf("Expected [P1 P2] in insertion order, got %v", got)
	}
}

func TestNew_RejectsMalformedInput(t *testing.T) {
	month := calendar.Month{Year: 2025, M: 11}

	dup := []models.Employee{parttime("X", models.ShiftDay), parttime("X", models.ShiftDay)}
	if _, err := New(month, dup, nil, models.Policy{}); err == nil {
		t.Error("Expected error for duplicate employee id")
	}

	badShift := []models.Employee{parttime("X", models.ShiftType("graveyard"))}
	if _, err := New(month, badShift, nil, models.Policy{}); err == nil {
		t.Error("Expected error for unknown shift type")
	}

	badDay := parttime("X", models.ShiftDay)
	badDay.FixedDaysOff = []int{7}
	if _, err := New(month, []models.Employee{badDay}, nil, models.Policy{}); err == nil {
		t.Error("Expected error for out-of-range weekday index")
	}

	badType := models.Employee{ID: "X", Type: "contractor", PreferredShifts: []models.ShiftType{models.ShiftDay}}
	if _, err := New(month, []models.Employee{badType}, nil, models.Policy{}); err == nil {
		t.Error("Expected error for unknown employment type")
	}

	badReq := models.StaffingRequirements{models.ClassWeekday: {models.ShiftDay: -1}}
	if _, err := New(month, nil, badReq, models.Policy{}); err == nil {
		t.Error("Expected error for negative headcount")
	}
}
