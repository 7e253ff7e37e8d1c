package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/Conceptual-Machines/hirepulse-api/internal/config"
	"github.com/Conceptual-Machines/hirepulse-api/internal/llm"
	"github.com/Conceptual-Machines/hirepulse-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct{}

func (stubProvider) Name() string { return "stub" }

func (stubProvider) Generate(_ context.Context, req *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	return &llm.GenerationResponse{Text: "stub output", Model: req.Model}, nil
}

func TestBuild_WithProvider(t *testing.T) {
	var gotKey string
	factory := func(_ context.Context, apiKey string) (llm.Provider, error) {
		gotKey = apiKey
		return stubProvider{}, nil
	}

	app, err := Build(context.Background(), &config.Config{GeminiAPIKey: "k", Environment: "test"}, "v1", factory)
	require.NoError(t, err)

	assert.Equal(t, "k", gotKey)
	assert.True(t, app.ProviderConfigured)
	assert.Equal(t, "stub", app.GenService.ProviderName())
	assert.False(t, app.Tracer.IsEnabled())

	deps := app.Dependencies()
	assert.Equal(t, "v1", deps.Version)
	assert.True(t, deps.ProviderConfigured)

	result, err := app.GenService.Generate(context.Background(), services.GenerationRequest{
		JobDescription: "jd", ResumeInfo: "r",
	})
	require.NoError(t, err)
	assert.Equal(t, "stub output", result.Output)
}

func TestBuild_MissingKeyKeepsRunning(t *testing.T) {
	app, err := Build(context.Background(), &config.Config{Environment: "test"}, "dev", nil)
	require.NoError(t, err)

	assert.False(t, app.ProviderConfigured)
	assert.Equal(t, "gemini", app.GenService.ProviderName())

	_, err = app.GenService.Generate(context.Background(), services.GenerationRequest{
		JobDescription: "jd", ResumeInfo: "r",
	})
	assert.ErrorIs(t, err, services.ErrGenerationFailed)
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

func TestBuild_BlankKeyIsNotConfigured(t *testing.T) {
	factory := func(context.Context, string) (llm.Provider, error) { return stubProvider{}, nil }

	app, err := Build(context.Background(), &config.Config{GeminiAPIKey: "   "}, "dev", factory)
	require.NoError(t, err)

	assert.False(t, app.ProviderConfigured)
	assert.False(t, app.Dependencies().ProviderConfigured)
}

func TestBuild_FactoryError(t *testing.T) {
	boom := errors.New("dial failed")
	app, err := Build(context.Background(), &config.Config{GeminiAPIKey: "k"}, "dev",
		func(context.Context, string) (llm.Provider, error) { return nil, boom })
	require.NoError(t, err)

	_, err = app.GenService.Generate(context.Background(), services.GenerationRequest{
		JobDescription: "jd", ResumeInfo: "r",
	})
	assert.ErrorIs(t, err, boom)
}

func TestBuild_RequiresConfig(t *testing.T) {
	_, err := Build(context.Background(), nil, "dev", nil)
	assert.Error(t, err)
}

func TestFilterSensitiveHeaders(t *testing.T) {
	filtered := filterSensitiveHeaders(map[string]string{
		"Authorization":  "Bearer abc",
		"cookie":         "session=1",
		"X-Goog-Api-Key": "secret",
		"Content-Type":   "application/json",
	})

	assert.Equal(t, "[REDACTED]", filtered["Authorization"])
	assert.Equal(t, "[REDACTED]", filtered["cookie"])
	assert.Equal(t, "[REDACTED]", filtered["X-Goog-Api-Key"])
	assert.Equal(t, "application/json", filtered["Content-Type"])
}

func TestInitSentry_NotConfigured(t *testing.T) {
	flush := InitSentry(&config.Config{}, "dev")
	require.NotNil(t, flush)
	flush()
}
