package roster

import "github.com/arnavshah/roster-api-go/pkg/models"

// DefaultMaxConsecutiveDays is the advisory consecutive-work threshold
const DefaultMaxConsecutiveDays = 5

// FindLongRuns scans the schedule per employee and reports every unbroken
// run of worked days longer than maxConsecutiveDays (a day counts as worked
// when the employee holds at least one assignment on it, any shift type).
// A run ending at month end uses the same strict comparison as one broken
// mid-month. Pass 0 for the default threshold. Warnings are advisory; they
// never block anything.
func (r *Roster) FindLongRuns(schedule models.Schedule, maxConsecutiveDays int) []models.RunWarning {
	if maxConsecutiveDays <= 0 {
		maxConsecutiveDays = DefaultMaxConsecutiveDays
	}

	warnings := []models.RunWarning{}
	days := r.Month.Days()

	for i := range r.Employees {
		emp := &r.Employees[i]
		run := 0
		lastWorked := 0

		for day := 1; day <= days; day++ {
			if schedule.AssignedTo(r.Month.DateKey(day), emp.ID) {
				run++
				lastWorked = day
				continue
			}
			if run > maxConsecutiveDays {
				warnings = append(warnings, r.runWarning(emp.ID, lastWorked, run))
			}
			run = 0
		}

		if run > maxConsecutiveDays {
			warnings = append(warnings, r.runWarning(emp.ID, lastWorked, run))
		}
	}

	return warnings
}

func (r *Roster) runWarning(employeeID string, lastWorked, run int) models.RunWarning {
	return models.RunWarning{
		EmployeeID: employeeID,
		StartDate:  r.Month.DateKey(lastWorked - run + 1),
		EndDate:    r.Month.DateKey(lastWorked),
		RunLength:  run,
	}
}
