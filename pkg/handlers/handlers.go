package handlers

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arnavshah/roster-api-go/pkg/auth"
	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/arnavshah/roster-api-go/pkg/database"
	"github.com/arnavshah/roster-api-go/pkg/models"
	"github.com/arnavshah/roster-api-go/pkg/roster"
)

//go:embed static/*
var staticEmbed embed.FS

// Handler contains dependencies for the route handlers
type Handler struct {
	DB    *gorm.DB
	Store *database.Store
	// Defaults used when a request or the store does not supply its own
	// configuration. Seeded from internal/defaults at startup.
	DefaultEmployees    []models.Employee
	DefaultRequirements models.StaffingRequirements
	DefaultShiftTimes   models.ShiftTimes
	DefaultPolicy       models.Policy
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the API key for roster routes using HMAC
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Authorization")
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			c.Abort()
			return
		}

		if len(key) > 7 && key[:7] == "Bearer " {
			key = key[7:]
		}

		userID, err := auth.VerifyHMACKey(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			c.Abort()
			return
		}

		// Fetch or create the key record so usage can be tracked
		var apiKey database.APIKey
		h.DB.Where(database.APIKey{Key: key}).FirstOrCreate(&apiKey, database.APIKey{
			Key:        key,
			Name:       userID,
			KeyPreview: auth.KeyPreview(key),
			RateLimit:  10000,
		})

		c.Set("apiKey", &apiKey)
		c.Set("userID", userID)
		c.Next()
	}
}

// RecordUsage records one engine call against the caller's API key using an
// upsert that works on both Postgres and SQLite.
func (h *Handler) RecordUsage(c *gin.Context, shiftCount, employeeCount int) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	today := time.Now().Format("2006-01-02")

	h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count":   gorm.Expr("request_count + ?", 1),
			"total_shifts":    gorm.Expr("total_shifts + ?", shiftCount),
			"total_employees": gorm.Expr("total_employees + ?", employeeCount),
		}),
	}).Create(&database.APIUsage{
		KeyID:          apiKey.ID,
		Date:           today,
		RequestCount:   1,
		TotalShifts:    shiftCount,
		TotalEmployees: employeeCount,
	})
}

// rosterRequest is the shared body shape of the engine endpoints. Month is
// 0-indexed on the wire, matching the persisted data this API round-trips.
// Employees, requirements, special dates, and the schedule are optional;
// missing pieces fall back to the store and then to the seeded defaults.
type rosterRequest struct {
	models.MonthContext
	Employees          []models.Employee           `json:"employees,omitempty"`
	Requirements       models.StaffingRequirements `json:"requirements,omitempty"`
	SpecialDates       *models.SpecialDates        `json:"specialDates,omitempty"`
	Schedule           models.Schedule             `json:"schedule,omitempty"`
	MaxConsecutiveDays int                         `json:"maxConsecutiveDays,omitempty"`
}

// buildRoster resolves a request into a Month, an engine instance, and the
// month's special dates.
func (h *Handler) buildRoster(req *rosterRequest) (calendar.Month, *roster.Roster, *models.SpecialDates, error) {
	month, err := calendar.MonthFromWire(req.MonthContext)
	if err != nil {
		return calendar.Month{}, nil, nil, err
	}

	employees := req.Employees
	if employees == nil {
		stored, err := h.Store.LoadEmployees()
		if err != nil {
			return calendar.Month{}, nil, nil, err
		}
		employees = stored
	}
	if employees == nil {
		employees = h.DefaultEmployees
	}

	reqs := req.Requirements
	if reqs == nil {
		reqs = h.DefaultRequirements
	}

	special := req.SpecialDates
	if special == nil {
		special, err = h.Store.LoadSpecialDates(month.Key())
		if err != nil {
			return calendar.Month{}, nil, nil, err
		}
	}

	r, err := roster.New(month, employees, reqs, h.DefaultPolicy)
	if err != nil {
		return calendar.Month{}, nil, nil, err
	}
	return month, r, special, nil
}

// resolveSchedule returns the request's schedule if present, otherwise the
// stored one for the month, otherwise an empty schedule.
func (h *Handler) resolveSchedule(req *rosterRequest, month calendar.Month) (models.Schedule, error) {
	if req.Schedule != nil {
		return req.Schedule, nil
	}
	stored, err := h.Store.LoadSchedule(month.Key())
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = make(models.Schedule)
	}
	return stored, nil
}

// countAssignments returns the number of filled slots in a schedule
func countAssignments(s models.Schedule) int {
	n := 0
	for _, day := range s {
		n += len(day)
	}
	return n
}

// AdminInterface serves the admin web interface from embedded files
func (h *Handler) AdminInterface(c *gin.Context) {
	_ = auth.EnsureAdminExists(h.DB)

	data, err := staticEmbed.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "static/index.html not found in embedded FS"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// GetStaticFS returns the embedded filesystem for static assets
func (h *Handler) GetStaticFS() http.FileSystem {
	sub, err := fs.Sub(staticEmbed, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
