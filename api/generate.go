// Package handler is the serverless function entry point for POST /api/generate.
package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/Conceptual-Machines/hirepulse-api/internal/api"
	"github.com/Conceptual-Machines/hirepulse-api/internal/bootstrap"
	"github.com/Conceptual-Machines/hirepulse-api/internal/config"
	"github.com/Conceptual-Machines/hirepulse-api/internal/logger"
	"github.com/gin-gonic/gin"
)

var (
	initOnce sync.Once
	router   http.Handler
	initErr  error
)

// functionVersion is set via ldflags during build
var functionVersion = "dev"

func setup() {
	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Flushing is left to the platform; events are sent asynchronously
	_ = bootstrap.InitSentry(cfg, functionVersion)

	app, err := bootstrap.Build(context.Background(), cfg, functionVersion, nil)
	if err != nil {
		initErr = err
		return
	}
	router = api.SetupFunctionRouter(app.Dependencies())
}

// Handler serves every invocation with one shared set of dependencies
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(setup)
	if initErr != nil {
		logger.Error("Function initialization failed", initErr, nil)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Generation failed."}`))
		return
	}
	router.ServeHTTP(w, r)
}
