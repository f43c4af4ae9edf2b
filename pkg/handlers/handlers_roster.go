package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/arnavshah/roster-api-go/pkg/models"
	"github.com/arnavshah/roster-api-go/pkg/roster"
)

// GenerateRoster runs the auto-assignment engine for a month, persists the
// result, and returns it together with a staffing validation report. The
// generated schedule fully overwrites any stored one for the month.
func (h *Handler) GenerateRoster(c *gin.Context) {
	var req rosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	month, r, special, err := h.buildRoster(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule := r.Generate(special)
	violations := r.Validate(schedule, special)

	if err := h.Store.SaveSchedule(month.Key(), schedule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not persist schedule"})
		return
	}

	h.RecordUsage(c, countAssignments(schedule), len(r.Employees))

	c.JSON(http.StatusOK, gin.H{
		"month":      month.Wire(),
		"schedule":   schedule,
		"violations": violations,
	})
}

// ValidateRoster checks a schedule against the staffing requirements and
// returns every unmet slot. The schedule may be supplied in the body (for
// hand-edited drafts) or loaded from the store.
func (h *Handler) ValidateRoster(c *gin.Context) {
	var req rosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	month, r, special, err := h.buildRoster(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.resolveSchedule(&req, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}

	violations := r.Validate(schedule, special)
	h.RecordUsage(c, countAssignments(schedule), len(r.Employees))

	c.JSON(http.StatusOK, gin.H{
		"month":      month.Wire(),
		"valid":      len(violations) == 0,
		"violations": violations,
	})
}

// CheckRuns reports consecutive-work runs exceeding the threshold. The
// warnings are advisory; a schedule with long runs is still saveable.
func (h *Handler) CheckRuns(c *gin.Context) {
	var req rosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	month, r, _, err := h.buildRoster(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.resolveSchedule(&req, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}

	warnings := r.FindLongRuns(schedule, req.MaxConsecutiveDays)
	h.RecordUsage(c, countAssignments(schedule), len(r.Employees))

	c.JSON(http.StatusOK, gin.H{
		"month":    month.Wire(),
		"warnings": warnings,
	})
}

// eligibilityRequest asks whether one employee may take one shift slot.
// This is the manual-edit validation path: slot edits themselves are not
// eligibility-checked, so callers ask here before writing.
type eligibilityRequest struct {
	models.MonthContext
	Date       string           `json:"date"`
	ShiftType  models.ShiftType `json:"shiftType"`
	EmployeeID string           `json:"employeeId"`
}

// CheckEligibility explains whether an employee may be assigned a shift on
// a date, including the per-employee weekly quota check.
func (h *Handler) CheckEligibility(c *gin.Context) {
	var req eligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.KnownShiftType(req.ShiftType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown shift type %q", req.ShiftType)})
		return
	}

	rr := rosterRequest{MonthContext: req.MonthContext}
	month, r, _, err := h.buildRoster(&rr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := month.ParseDateKey(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp := r.Employee(req.EmployeeID)
	if emp == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown employee id %q", req.EmployeeID)})
		return
	}

	if reason := roster.CheckEligibility(emp, req.Date, month.DayOfWeek(day), req.ShiftType); reason != nil {
		c.JSON(http.StatusOK, gin.H{"eligible": false, "reason": reason})
		return
	}

	// Quota applies to the employee under evaluation against the current
	// stored schedule.
	schedule, err := h.resolveSchedule(&rr, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}
	if !r.UnderWeeklyLimit(emp, req.ShiftType, day, schedule) {
		cap, _ := emp.WeeklyCap(req.ShiftType)
		c.JSON(http.StatusOK, gin.H{
			"eligible": false,
			"reason": roster.Ineligibility{
				Rule:    "weekly_quota",
				Message: fmt.Sprintf("%s is at the weekly %s limit (%d)", emp.Name, req.ShiftType, cap),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"eligible": true})
}

// RosterStats returns the monthly per-employee summary
func (h *Handler) RosterStats(c *gin.Context) {
	var req rosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	month, r, special, err := h.buildRoster(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.resolveSchedule(&req, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}

	stats := r.Summarize(schedule, h.DefaultShiftTimes, special, nil)
	h.RecordUsage(c, countAssignments(schedule), len(r.Employees))

	c.JSON(http.StatusOK, gin.H{
		"month": month.Wire(),
		"stats": stats,
	})
}

// ExportCSV writes the stored schedule for ?year=&month= (month 1-based,
// matching the month-key convention) as a CSV grid of assignments.
func (h *Handler) ExportCSV(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}
	m, err := strconv.Atoi(c.Query("month"))
	if err != nil || m < 1 || m > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1..12"})
		return
	}
	month := calendar.Month{Year: year, M: m}

	schedule, err := h.Store.LoadSchedule(month.Key())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}
	if schedule == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No schedule saved for " + month.Key()})
		return
	}

	employees, err := h.Store.LoadEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load employees"})
		return
	}
	if employees == nil {
		employees = h.DefaultEmployees
	}
	byID := make(map[string]*models.Employee, len(employees))
	for i := range employees {
		byID[employees[i].ID] = &employees[i]
	}

	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"date", "shift", "employee_id", "employee_name", "start", "end", "hours"})

	for day := 1; day <= month.Days(); day++ {
		dateKey := month.DateKey(day)
		class := month.Class(day)
		for _, shift := range []models.ShiftType{models.ShiftDay, models.ShiftShort, models.ShiftNight} {
			a, ok := schedule[dateKey][shift]
			if !ok {
				continue
			}
			name := a.Employee
			emp := byID[a.Employee]
			if emp != nil {
				name = emp.Name
			}
			t, _ := h.DefaultShiftTimes.For(emp, class, shift)
			writer.Write([]string{
				dateKey,
				string(shift),
				a.Employee,
				name,
				t.Start,
				t.End,
				strconv.FormatFloat(t.Hours, 'f', -1, 64),
			})
		}
	}
	writer.Flush()

	h.RecordUsage(c, countAssignments(schedule), len(employees))
	c.JSON(http.StatusOK, gin.H{"csv": out.String()})
}
