// Package defaults carries the seed roster configuration: the employee set,
// shift-time table, staffing requirements, and selection policy the store is
// seeded with on first run, and the fallback for engine calls that do not
// supply their own. Everything here is plain data handed to the engine by
// value; nothing in the engine reads it directly.
package defaults

import "github.com/arnavshah/roster-api-go/pkg/models"

// Employees returns the seed employee set. Order matters: it is the
// tiebreak order the assignment engine falls back to.
func Employees() []models.Employee {
	return []models.Employee{
		{
			ID:               "A",
			Name:             "Staff A",
			Type:             models.Fulltime,
			FixedDaysOff:     []int{3, 4},
			UnavailableDates: []string{"11/10", "11/11", "11/12", "11/13", "11/14"},
			PreferredShifts:  []models.ShiftType{models.ShiftDay},
			Color:            "#ffc0cb",
		},
		{
			ID:               "B",
			Name:             "Part-timer B",
			Type:             models.Parttime,
			FixedDaysOff:     []int{0, 1},
			UnavailableDates: []string{"11/26"},
			PreferredShifts:  []models.ShiftType{models.ShiftDay},
			Color:            "#ace9ac",
		},
		{
			ID:               "C",
			Name:             "Part-timer C",
			Type:             models.Parttime,
			FixedDaysOff:     []int{},
			UnavailableDates: []string{"11/16", "11/17"},
			SpecialDates: map[string][]models.ShiftType{
				"11/13": {models.ShiftNight},
				"11/14": {models.ShiftNight},
			},
			PreferredShifts: []models.ShiftType{models.ShiftNight},
			Color:           "#f4dd6d",
		},
		{
			ID:               "D",
			Name:             "Part-timer D",
			Type:             models.Parttime,
			FixedDaysOff:     []int{},
			UnavailableDates: []string{},
			AvailableDates:   []string{"11/8", "11/22", "11/29"},
			PreferredShifts:  []models.ShiftType{models.ShiftNight},
			SpecialShiftTimes: map[models.CalendarClass]map[models.ShiftType]models.ShiftTime{
				models.ClassWeekend: {
					models.ShiftNight: {Start: "16:45", End: "24:15", Hours: 7.5},
				},
			},
			Color: "#4db3f3",
		},
		{
			ID:               "E",
			Name:             "Part-timer E",
			Type:             models.Parttime,
			FixedDaysOff:     []int{},
			UnavailableDates: []string{"11/4", "11/14", "11/20", "11/21", "11/23"},
			PreferredShifts:  []models.ShiftType{models.ShiftDay, models.ShiftShort},
			Color:            "#b9aaf5",
		},
		{
			ID:                    "F",
			Name:                  "Part-timer F",
			Type:                  models.Parttime,
			FixedDaysOff:          []int{},
			UnavailableDates:      []string{"11/1", "11/2", "11/10", "11/11", "11/21", "11/22"},
			PreferredShifts:       []models.ShiftType{models.ShiftNight, models.ShiftShort},
			MaxNightShiftsPerWeek: 2,
			Color:                 "#ffc080",
		},
	}
}

// ShiftTimes returns the class/shift time table
func ShiftTimes() models.ShiftTimes {
	return models.ShiftTimes{
		models.ClassWeekday: {
			models.ShiftDay:   {Start: "10:30", End: "18:30", Hours: 8},
			models.ShiftNight: {Start: "18:15", End: "24:15", Hours: 6},
		},
		models.ClassWeekend: {
			models.ShiftDay:   {Start: "09:50", End: "17:50", Hours: 8},
			models.ShiftShort: {Start: "12:00", End: "16:00", Hours: 4},
			models.ShiftNight: {Start: "16:15", End: "24:15", Hours: 8},
		},
	}
}

// Requirements returns the headcount table
func Requirements() models.StaffingRequirements {
	return models.StaffingRequirements{
		models.ClassWeekday: {
			models.ShiftDay:   1,
			models.ShiftNight: 1,
		},
		models.ClassWeekend: {
			models.ShiftDay:   1,
			models.ShiftShort: 1,
			models.ShiftNight: 1,
		},
	}
}

// Policy returns the selection priority table: weekend short shifts go to E
// then F; night shifts go to night-preferring staff in the order D, C, F.
func Policy() models.Policy {
	return models.Policy{
		Rules: []models.SelectionRule{
			{
				Class:     models.ClassWeekend,
				Shift:     models.ShiftShort,
				PreferIDs: []string{"E", "F"},
			},
			{
				Shift:             models.ShiftNight,
				RequirePreference: true,
				PreferIDs:         []string{"D", "C", "F"},
			},
		},
	}
}
