package main

import (
	"context"
	"log"

	"github.com/Conceptual-Machines/hirepulse-api/internal/api"
	"github.com/Conceptual-Machines/hirepulse-api/internal/bootstrap"
	"github.com/Conceptual-Machines/hirepulse-api/internal/config"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry, flush on shutdown
	flush := bootstrap.InitSentry(cfg, GetVersion())
	defer flush()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := bootstrap.Build(context.Background(), cfg, GetVersion(), nil)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to build application:", err)
	}

	// Initialize router
	router := api.SetupRouter(app.Dependencies())

	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}
