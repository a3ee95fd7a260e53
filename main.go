package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"grooming-service-server/config"
	"grooming-service-server/database"
	"grooming-service-server/jobs"
	"grooming-service-server/middleware"
	"grooming-service-server/routes"
	"grooming-service-server/services"
	ws "grooming-service-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Optional demo data for fresh installs
	if os.Getenv("SEED_DATA") == "true" {
		if err := database.SeedSampleData(database.DB); err != nil {
			log.Printf("⚠️ Seeding failed: %v", err)
		}
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())

	// CORS
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Audit logging
	router.Use(middleware.AuditLogMiddleware())

	// WebSocket hub for the admin notification feed
	hub := ws.NewHub()
	go hub.Run()

	// API routes
	routes.RegisterRoutes(router, hub)

	// Daily reminders for confirmed bookings
	notifier := services.NewNotificationService(database.DB, hub)
	reminderJob := jobs.NewReminderJob(database.DB, notifier, 15*time.Minute)
	reminderJob.Start()
	defer reminderJob.Stop()

	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
