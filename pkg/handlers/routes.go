package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register wires all routes onto a gin engine. Shared by the standalone
// server and the serverless entrypoint.
func (h *Handler) Register(r *gin.Engine) {
	r.StaticFS("/static", h.GetStaticFS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shift Roster API",
			"version": "1.0.0",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/roster/generate", h.GenerateRoster)
		api.POST("/roster/validate", h.ValidateRoster)
		api.POST("/roster/runs", h.CheckRuns)
		api.POST("/roster/eligibility", h.CheckEligibility)
		api.POST("/roster/stats", h.RosterStats)
		api.GET("/roster/csv", h.ExportCSV)

		api.GET("/schedules/:year/:month", h.GetSchedule)
		api.PUT("/schedules/:year/:month", h.PutSchedule)
		api.PUT("/schedules/:year/:month/slot", h.PutSlot)

		api.GET("/employees", h.GetEmployees)
		api.PUT("/employees", h.PutEmployees)

		api.GET("/special-dates/:year/:month", h.GetSpecialDates)
		api.PUT("/special-dates/:year/:month", h.PutSpecialDates)

		api.GET("/usage", h.GetMyUsage)
	}
}
