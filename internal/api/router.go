package api

import (
	"github.com/Conceptual-Machines/hirepulse-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/hirepulse-api/internal/api/middleware"
	"github.com/Conceptual-Machines/hirepulse-api/internal/config"
	"github.com/Conceptual-Machines/hirepulse-api/internal/metrics"
	"github.com/Conceptual-Machines/hirepulse-api/internal/services"
	"github.com/gin-gonic/gin"
)

// Dependencies are the shared, read-only collaborators of both routers
type Dependencies struct {
	Config             *config.Config
	GenService         *services.GenerationService
	Recorder           metrics.Recorder
	Version            string
	ProviderConfigured bool
}

func newEngine(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.Recorder))

	return router
}

// SetupRouter builds the standalone server routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := newEngine(deps)

	// CORS middleware
	var origins []string
	if deps.Config != nil {
		origins = deps.Config.CORSAllowedOrigins
	}
	router.Use(apimiddleware.CORS(origins...))

	router.GET("/", handlers.Root)

	healthHandler := handlers.NewHealthHandler(deps.GenService.ProviderName(), deps.ProviderConfigured)
	router.GET("/health", healthHandler.HealthCheck)

	metricsHandler := handlers.NewMetricsHandler(deps.Version, deps.GenService.ProviderName())
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	generateHandler := handlers.NewGenerateHandler(deps.GenService)
	router.POST("/generate", generateHandler.Generate)

	return router
}

// SetupFunctionRouter builds the platform function: every path and method
// reaches the same handler, which accepts POST only. No CORS handling here,
// so preflight requests get 405 like any other non-POST method.
func SetupFunctionRouter(deps Dependencies) *gin.Engine {
	router := newEngine(deps)

	generateHandler := handlers.NewGenerateHandler(deps.GenService)
	router.Any("/*path", generateHandler.Function)

	return router
}
