package main

import (
	"log"

	"github.com/bondbuddies/backend/internal/router"
	"github.com/bondbuddies/backend/pkg/config"
	"github.com/bondbuddies/backend/pkg/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Postgres, db.Mongo)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
