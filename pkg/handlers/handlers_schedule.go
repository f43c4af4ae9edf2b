package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/arnavshah/roster-api-go/pkg/models"
	"github.com/arnavshah/roster-api-go/pkg/roster"
)

// monthFromParams reads /:year/:month path params (month 1-based, matching
// the "{year}-{month}" persistence keys).
func monthFromParams(c *gin.Context) (calendar.Month, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return calendar.Month{}, fmt.Errorf("invalid year %q", c.Param("year"))
	}
	m, err := strconv.Atoi(c.Param("month"))
	if err != nil || m < 1 || m > 12 {
		return calendar.Month{}, fmt.Errorf("invalid month %q, want 1..12", c.Param("month"))
	}
	return calendar.Month{Year: year, M: m}, nil
}

// GetSchedule returns the stored schedule for a month
func (h *Handler) GetSchedule(c *gin.Context) {
	month, err := monthFromParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.Store.LoadSchedule(month.Key())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}
	if schedule == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No schedule saved for " + month.Key()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":    month.Wire(),
		"schedule": schedule,
	})
}

// PutSchedule stores a whole month's schedule, validating its date keys and
// shift types before accepting it.
func (h *Handler) PutSchedule(c *gin.Context) {
	month, err := monthFromParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var schedule models.Schedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for dateKey, day := range schedule {
		if _, err := month.ParseDateKey(dateKey); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for shift := range day {
			if !models.KnownShiftType(shift) {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown shift type %q on %s", shift, dateKey)})
				return
			}
		}
	}

	if err := h.Store.SaveSchedule(month.Key(), schedule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not persist schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved", "month": month.Wire()})
}

// slotEdit is a single (date, shift) assignment change. An empty employee
// clears the slot.
type slotEdit struct {
	Date      string           `json:"date"`
	ShiftType models.ShiftType `json:"shiftType"`
	Employee  string           `json:"employee"`
}

// PutSlot sets or clears one shift slot. Setting the same slot twice is
// idempotent, and clearing a slot that was never set is a no-op. Eligibility
// is deliberately not enforced here; callers validate through the
// eligibility endpoint before writing.
func (h *Handler) PutSlot(c *gin.Context) {
	month, err := monthFromParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var edit slotEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := month.ParseDateKey(edit.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.KnownShiftType(edit.ShiftType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown shift type %q", edit.ShiftType)})
		return
	}

	schedule, err := h.Store.LoadSchedule(month.Key())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}
	if schedule == nil {
		schedule = make(models.Schedule)
	}

	if edit.Employee == "" {
		schedule.Clear(edit.Date, edit.ShiftType)
	} else {
		schedule.Set(edit.Date, edit.ShiftType, edit.Employee)
	}

	if err := h.Store.SaveSchedule(month.Key(), schedule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not persist schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":    month.Wire(),
		"schedule": schedule,
	})
}

// GetEmployees returns the stored employee set, falling back to the seeded
// defaults when none has been saved yet.
func (h *Handler) GetEmployees(c *gin.Context) {
	employees, err := h.Store.LoadEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load employees"})
		return
	}
	if employees == nil {
		employees = h.DefaultEmployees
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// PutEmployees replaces the employee set. List order is preserved; it is
// the assignment tiebreak order.
func (h *Handler) PutEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := c.ShouldBindJSON(&employees); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// roster.New runs the full fail-fast input validation
	if _, err := roster.New(calendar.Month{Year: 2000, M: 1}, employees, nil, models.Policy{}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SaveEmployees(employees); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not persist employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employees saved", "count": len(employees)})
}

// GetSpecialDates returns a month's special-date sets (empty sets when
// nothing has been saved).
func (h *Handler) GetSpecialDates(c *gin.Context) {
	month, err := monthFromParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sd, err := h.Store.LoadSpecialDates(month.Key())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load special dates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"month":        month.Wire(),
		"specialDates": sd,
	})
}

// PutSpecialDates stores a month's special-date sets
func (h *Handler) PutSpecialDates(c *gin.Context) {
	month, err := monthFromParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var sd models.SpecialDates
	if err := c.ShouldBindJSON(&sd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, dateKey := range append(append([]string{}, sd.Holidays...), sd.Closed...) {
		if _, err := month.ParseDateKey(dateKey); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	for dateKey := range sd.Adjusted {
		if _, err := month.ParseDateKey(dateKey); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.Store.SaveSpecialDates(month.Key(), &sd); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not persist special dates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Special dates saved", "month": month.Wire()})
}
