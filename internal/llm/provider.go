package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when no provider credential was configured
	ErrMissingAPIKey = errors.New("gemini API key not configured")
	// ErrEmptyResponse is returned when the provider answered without any text
	ErrEmptyResponse = errors.New("provider response did not include any output text")
	// ErrBlockedResponse is returned when the provider stopped on a safety or policy filter.
	// It wraps ErrEmptyResponse since no usable output was produced.
	ErrBlockedResponse = fmt.Errorf("provider response was blocked: %w", ErrEmptyResponse)
)

// Provider defines the interface for text generation providers
type Provider interface {
	// Generate sends a single user prompt and returns the generated text
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for generation
type GenerationRequest struct {
	Model           string
	Prompt          string
	MaxOutputTokens int32
	Temperature     float32
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	Text  string
	Model string
	Usage Usage
}

// Usage holds token counts reported by the provider
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// unavailableProvider fails every call with the error that prevented construction
type unavailableProvider struct {
	name string
	err  error
}

// Unavailable returns a Provider whose Generate always fails with err.
// It lets the process serve liveness traffic while the credential is missing.
func Unavailable(name string, err error) Provider {
	return &unavailableProvider{name: name, err: err}
}

func (p *unavailableProvider) Name() string {
	return p.name
}

func (p *unavailableProvider) Generate(_ context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	return nil, fmt.Errorf("%s provider unavailable (model %s): %w", p.name, request.Model, p.err)
}
