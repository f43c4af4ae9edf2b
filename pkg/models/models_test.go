package models

import (
	"reflect"
	"testing"
)

func TestScheduleSet_Idempotent(t *testing.T) {
	once := make(Schedule)
	once.Set("11/5", ShiftDay, "A")

	twice := make(Schedule)
	twice.Set("11/5", ShiftDay, "A")
	twice.Set("11/5", ShiftDay, "A")

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Expected setting the same slot twice to equal setting it once: %v vs %v", once, twice)
	}
}

func TestScheduleClear_RemovesEmptyDate(t *testing.T) {
	s := make(Schedule)
	s.Set("11/5", ShiftDay, "A")
	s.Set("11/5", ShiftNight, "C")

	s.Clear("11/5", ShiftDay)
	if _, ok := s["11/5"]; !ok {
		t.Fatal("Expected the date entry to survive while a shift remains")
	}

	s.Clear("11/5", ShiftNight)
	if _, ok := s["11/5"]; ok {
		t.Error("Expected the date entry to be dropped with its last shift")
	}
}

func TestScheduleClear_UnsetIsNoOp(t *testing.T) {
	s := make(Schedule)
	s.Clear("11/5", ShiftDay) // must not panic or create entries
	if len(s) != 0 {
		t.Errorf("Expected an untouched schedule, got %v", s)
	}
}

func TestAssignedTo(t *testing.T) {
	s := make(Schedule)
	s.Set("11/5", ShiftNight, "C")

	if !s.AssignedTo("11/5", "C") {
		t.Error("Expected C to be assigned on 11/5")
	}
	if s.AssignedTo("11/5", "F") {
		t.Error("Expected F to be unassigned on 11/5")
	}
	if s.AssignedTo("11/6", "C") {
		t.Error("Expected no assignment on 11/6")
	}
}

func TestWeeklyCap(t *testing.T) {
	e := Employee{MaxNightShiftsPerWeek: 2}
	if cap, ok := e.WeeklyCap(ShiftNight); !ok || cap != 2 {
		t.Errorf("Expected night cap 2 via the wire field, got %d %v", cap, ok)
	}
	if _, ok := e.WeeklyCap(ShiftDay); ok {
		t.Error("Expected no day cap")
	}

	e.WeeklyShiftCaps = map[ShiftType]int{ShiftNight: 3, ShiftShort: 1}
	if cap, _ := e.WeeklyCap(ShiftNight); cap != 3 {
		t.Errorf("Expected the explicit cap map to win, got %d", cap)
	}
	if cap, ok := e.WeeklyCap(ShiftShort); !ok || cap != 1 {
		t.Errorf("Expected short cap 1, got %d %v", cap, ok)
	}
}

func TestShiftTimesFor_Override(t *testing.T) {
	table := ShiftTimes{
		ClassWeekend: {ShiftNight: {Start: "16:15", End: "24:15", Hours: 8}},
	}
	emp := Employee{
		SpecialShiftTimes: map[CalendarClass]map[ShiftType]ShiftTime{
			ClassWeekend: {ShiftNight: {Start: "16:45", End: "24:15", Hours: 7.5}},
		},
	}

	got, ok := table.For(&emp, ClassWeekend, ShiftNight)
	if !ok || got.Hours != 7.5 {
		t.Errorf("Expected the employee override, got %+v %v", got, ok)
	}

	plain, ok := table.For(nil, ClassWeekend, ShiftNight)
	if !ok || plain.Hours != 8 {
		t.Errorf("Expected the shared table entry, got %+v %v", plain, ok)
	}

	if _, ok := table.For(nil, ClassWeekday, ShiftNight); ok {
		t.Error("Expected a miss for an absent class")
	}
}

func TestPolicyRuleFor(t *testing.T) {
	p := Policy{Rules: []SelectionRule{
		{Class: ClassWeekend, Shift: ShiftShort, PreferIDs: []string{"E", "F"}},
		{Shift: ShiftNight, RequirePreference: true, PreferIDs: []string{"D", "C", "F"}},
	}}

	if r := p.RuleFor(ClassWeekend, ShiftShort); r == nil || r.PreferIDs[0] != "E" {
		t.Errorf("Expected the weekend short rule, got %+v", r)
	}
	if r := p.RuleFor(ClassWeekday, ShiftShort); r != nil {
		t.Errorf("Expected no weekday short rule, got %+v", r)
	}
	// The night rule has no class and matches both
	if r := p.RuleFor(ClassWeekday, ShiftNight); r == nil {
		t.Error("Expected the night rule to match weekdays")
	}
	if r := p.RuleFor(ClassWeekend, ShiftNight); r == nil {
		t.Error("Expected the night rule to match weekends")
	}
}
