package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"motosgarage-api/config"
	"motosgarage-api/database"
	"motosgarage-api/middleware"
	"motosgarage-api/routes"
	"motosgarage-api/services"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed sample data (development only)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: failed to seed database: %v", err)
	}

	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	emailService := services.NewEmailService(cfg)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())

	routes.SetupRoutes(router, db, cfg, emailService)

	log.Printf("Starting MotosGarage API server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
