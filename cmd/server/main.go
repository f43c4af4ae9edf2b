package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/arnavshah/roster-api-go/internal/defaults"
	"github.com/arnavshah/roster-api-go/pkg/auth"
	"github.com/arnavshah/roster-api-go/pkg/database"
	"github.com/arnavshah/roster-api-go/pkg/handlers"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	store := &database.Store{DB: db}

	// Seed the employee set on first run so the API is usable out of the box
	if existing, err := store.LoadEmployees(); err == nil && existing == nil {
		if err := store.SaveEmployees(defaults.Employees()); err != nil {
			log.Printf("could not seed employees: %v", err)
		}
	}

	h := &handlers.Handler{
		DB:                  db,
		Store:               store,
		DefaultEmployees:    defaults.Employees(),
		DefaultRequirements: defaults.Requirements(),
		DefaultShiftTimes:   defaults.ShiftTimes(),
		DefaultPolicy:       defaults.Policy(),
	}

	r := gin.Default()
	h.Register(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
