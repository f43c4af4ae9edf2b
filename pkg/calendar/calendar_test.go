package calendar

import (
	"testing"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

func TestDays(t *testing.T) {
	if got := (Month{Year: 2025, M: 11}).Days(); got != 30 {
		t.Errorf("Expected November 2025 to have 30 days, got %d", got)
	}
	if got := (Month{Year: 2024, M: 2}).Days(); got != 29 {
		t.Errorf("Expected February 2024 to have 29 days, got %d", got)
	}
	if got := (Month{Year: 2025, M: 2}).Days(); got != 28 {
		t.Errorf("Expected February 2025 to have 28 days, got %d", got)
	}
}

func TestDayOfWeek(t *testing.T) {
	m := Month{Year: 2025, M: 11}
	// November 1, 2025 is a Saturday
	if got := m.DayOfWeek(1); got != 6 {
		t.Errorf("Expected 11/1 to be Saturday (6), got %d", got)
	}
	if got := m.DayOfWeek(2); got != 0 {
		t.Errorf("Expected 11/2 to be Sunday (0), got %d", got)
	}
	if got := m.DayOfWeek(3); got != 1 {
		t.Errorf("Expected 11/3 to be Monday (1), got %d", got)
	}
}

func TestIsWeekend(t *testing.T) {
	for dow := 0; dow < 7; dow++ {
		want := dow == 0 || dow == 6
		if IsWeekend(dow) != want {
			t.Errorf("IsWeekend(%d) = %v, want %v", dow, IsWeekend(dow), want)
		}
	}
}

func TestClass(t *testing.T) {
	m := Month{Year: 2025, M: 11}
	if m.Class(1) != models.ClassWeekend {
		t.Errorf("Expected 11/1 (Saturday) to be weekend")
	}
	if m.Class(5) != models.ClassWeekday {
		t.Errorf("Expected 11/5 (Wednesday) to be weekday")
	}
}

func TestISOWeekStart(t *testing.T) {
	m := Month{Year: 2025, M: 11}

	// 11/5 is a Wednesday; its week's Monday is 11/3
	if got := m.ISOWeekStart(5); got != 3 {
		t.Errorf("Expected week start 3 for day 5, got %d", got)
	}
	// Monday maps to itself
	if got := m.ISOWeekStart(3); got != 3 {
		t.Errorf("Expected week start 3 for day 3, got %d", got)
	}
	// 11/2 is a Sunday; its Monday is in the previous month, so the value
	// falls below 1 and callers clamp.
	if got := m.ISOWeekStart(2); got != -4 {
		t.Errorf("Expected week start -4 for day 2, got %d", got)
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	m := Month{Year: 2025, M: 11}

	if got := m.DateKey(7); got != "11/7" {
		t.Errorf("Expected date key 11/7, got %q", got)
	}

	day, err := m.ParseDateKey("11/7")
	if err != nil {
		t.Fatalf("ParseDateKey failed: %v", err)
	}
	if day != 7 {
		t.Errorf("Expected day 7, got %d", day)
	}

	if _, err := m.ParseDateKey("12/7"); err == nil {
		t.Error("Expected error for wrong month in date key")
	}
	if _, err := m.ParseDateKey("11/31"); err == nil {
		t.Error("Expected error for out-of-range day")
	}
	if _, err := m.ParseDateKey("bogus"); err == nil {
		t.Error("Expected error for malformed key")
	}
}

func TestMonthFromWire(t *testing.T) {
	m, err := MonthFromWire(models.MonthContext{Year: 2025, Month: 10})
	if err != nil {
		t.Fatalf("MonthFromWire failed: %v", err)
	}
	if m.M != 11 || m.Year != 2025 {
		t.Errorf("Expected 2025-11, got %d-%d", m.Year, m.M)
	}
	if m.Key() != "2025-11" {
		t.Errorf("Expected month key 2025-11, got %q", m.Key())
	}
	if m.Wire().Month != 10 {
		t.Errorf("Expected wire month 10, got %d", m.Wire().Month)
	}

	if _, err := MonthFromWire(models.MonthContext{Year: 2025, Month: 12}); err == nil {
		t.Error("Expected error for wire month 12")
	}
}
