package roster

import (
	"testing"

	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/arnavshah/roster-api-go/pkg/models"
)

func TestUnderWeeklyLimit(t *testing.T) {
	emp := parttime("F", models.ShiftNight)
	emp.MaxNightShiftsPerWeek = 2

	r, err := New(calendar.Month{Year: 2025, M: 11}, []models.Employee{emp}, nil, models.Policy{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// 11/3 is Monday; 11/3-11/9 is one ISO week
	schedule := make(models.Schedule)
	schedule.Set("11/3", models.ShiftNight, "F")
	schedule.Set("11/5", models.ShiftNight, "F")

	if r.UnderWeeklyLimit(r.Employee("F"), models.ShiftNight, 7, schedule) {
		t.Error("Expected F to be at the weekly night cap within the same ISO week")
	}
	// 11/10 starts the next ISO week
	if !r.UnderWeeklyLimit(r.Employee("F"), models.ShiftNight, 10, schedule) {
		t.Error("Expected F to be under the cap in the following week")
	}
}

func TestUnderWeeklyLimit_NoCap(t *testing.T) {
	emp := parttime("C", models.ShiftNight)

	r, err := New(calendar.Month{Year: 2025, M: 11}, []models.Employee{emp}, nil, models.Policy{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	schedule := make(models.Schedule)
	for d := 3; d <= 9; d++ {
		schedule.Set(r.Month.DateKey(d), models.ShiftNight, "C")
	}

	if !r.UnderWeeklyLimit(r.Employee("C"), models.ShiftNight, 9, schedule) {
		t.Error("Expected an uncapped employee to always be under the limit")
	}
}

func TestUnderWeeklyLimit_ClampsToMonth(t *testing.T) {
	emp := parttime("F", models.ShiftNight)
	emp.MaxNightShiftsPerWeek = 2

	r, err := New(calendar.Month{Year: 2025, M: 11}, []models.Employee{emp}, nil, models.Policy{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// 11/1 and 11/2 belong to an ISO week starting in October; the window
	// clamps to the month, so only those two days are counted.
	schedule := make(models.Schedule)
	schedule.Set("11/1", models.ShiftNight, "F")

	if !r.UnderWeeklyLimit(r.Employee("F"), models.ShiftNight, 2, schedule) {
		t.Error("Expected one night in the clamped window to be under a cap of 2")
	}

	schedule.Set("11/2", models.ShiftNight, "F")
	if r.UnderWeeklyLimit(r.Employee("F"), models.ShiftNight, 2, schedule) {
		t.Error("Expected two nights in the clamped window to reach the cap")
	}
}

func TestWeeklyCap_GeneralizedOverNight(t *testing.T) {
	emp := parttime("G", models.ShiftShort)
	emp.WeeklyShiftCaps = map[models.ShiftType]int{models.ShiftShort: 1}

	r, err := New(calendar.Month{Year: 2025, M: 11}, []models.Employee{emp}, nil, models.Policy{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	schedule := make(models.Schedule)
	schedule.Set("11/8", models.ShiftShort, "G")

	if r.UnderWeeklyLimit(r.Employee("G"), models.ShiftShort, 9, schedule) {
		t.Error("Expected the short-shift cap to apply within the week")
	}
}
