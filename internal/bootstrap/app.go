package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/hirepulse-api/internal/api"
	"github.com/Conceptual-Machines/hirepulse-api/internal/config"
	"github.com/Conceptual-Machines/hirepulse-api/internal/llm"
	"github.com/Conceptual-Machines/hirepulse-api/internal/logger"
	"github.com/Conceptual-Machines/hirepulse-api/internal/metrics"
	"github.com/Conceptual-Machines/hirepulse-api/internal/observability"
	"github.com/Conceptual-Machines/hirepulse-api/internal/services"
)

// App holds shared dependencies, built once per process and read-only afterwards
type App struct {
	Config             *config.Config
	Provider           llm.Provider
	ProviderConfigured bool
	Tracer             *observability.LangfuseClient
	Recorder           metrics.Recorder
	GenService         *services.GenerationService
	Version            string
}

// ProviderFactory builds the generation provider from the credential
type ProviderFactory func(ctx context.Context, apiKey string) (llm.Provider, error)

// GeminiFactory is the default ProviderFactory
func GeminiFactory(ctx context.Context, apiKey string) (llm.Provider, error) {
	provider, err := llm.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// Build prepares shared dependencies without wiring routes.
// A provider that cannot be built does not fail startup: generation requests
// fail with the construction error instead, while liveness keeps working.
func Build(ctx context.Context, cfg *config.Config, version string, newProvider ProviderFactory) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if newProvider == nil {
		newProvider = GeminiFactory
	}

	if !cfg.HasGeminiKey() {
		logger.Warn("GEMINI_API_KEY not set, generation requests will fail", nil)
	}

	provider, err := newProvider(ctx, cfg.GeminiAPIKey)
	configured := err == nil && cfg.HasGeminiKey()
	if err != nil {
		if !errors.Is(err, llm.ErrMissingAPIKey) {
			logger.Error("Failed to create generation provider", err, nil)
		}
		provider = llm.Unavailable(llm.ProviderNameGemini, err)
	}

	tracer := observability.NewLangfuse(ctx, cfg)
	recorder := metrics.Multi{
		metrics.NewSentryMetrics(),
		metrics.NewCloudWatch(ctx, cfg.Environment),
	}

	genService, err := services.NewGenerationService(provider, tracer, recorder)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	return &App{
		Config:             cfg,
		Provider:           provider,
		ProviderConfigured: configured,
		Tracer:             tracer,
		Recorder:           recorder,
		GenService:         genService,
		Version:            version,
	}, nil
}

// Dependencies returns the router view of the app
func (a *App) Dependencies() api.Dependencies {
	return api.Dependencies{
		Config:             a.Config,
		GenService:         a.GenService,
		Recorder:           a.Recorder,
		Version:            a.Version,
		ProviderConfigured: a.ProviderConfigured,
	}
}
