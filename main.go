// File: /main.go
package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"peerza-api/config"
	"peerza-api/database"
	"peerza-api/jobs"
	"peerza-api/middleware"
	"peerza-api/routes"
	"peerza-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	// Redis backs presence and the token blacklist. The API stays up
	// without it; those features degrade to database-only behavior.
	var rdb *redis.Client
	if opts, err := redis.ParseURL(cfg.RedisURL); err != nil {
		logrus.Warnf("Invalid REDIS_URL, continuing without Redis: %v", err)
	} else {
		rdb = redis.NewClient(opts)
	}

	emailService := services.NewEmailService(cfg)

	// Prune read notifications older than 30 days, once a day
	cleanupJob := jobs.NewNotificationCleanupJob(db, 24*time.Hour, 30*24*time.Hour)
	cleanupJob.Start()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Request logging middleware
	router.Use(middleware.RequestLogger())

	// Recovery middleware
	router.Use(gin.Recovery())

	// Global rate limiting and security headers
	router.Use(middleware.RateLimit(300, 50))
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, rdb, emailService)

	// Start server
	logrus.Infof("Starting Peerza API server on port %s", cfg.Port)
	logrus.Infof("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
