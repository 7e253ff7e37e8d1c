package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Conceptual-Machines/hirepulse-api/internal/llm"
	"github.com/Conceptual-Machines/hirepulse-api/internal/metrics"
	"github.com/Conceptual-Machines/hirepulse-api/internal/observability"
	"github.com/Conceptual-Machines/hirepulse-api/internal/prompt"
)

var (
	// ErrMissingFields is returned when jobDescription or resumeInfo is empty
	ErrMissingFields = errors.New("missing required fields")
	// ErrGenerationFailed wraps every provider failure
	ErrGenerationFailed = errors.New("generation failed")
)

// GenerationRequest is the job application payload
type GenerationRequest struct {
	JobDescription string `json:"jobDescription"`
	ResumeInfo     string `json:"resumeInfo"`
	TargetRole     string `json:"targetRole"`
	Mode           string `json:"mode"`
}

// Validate checks that both required fields are present
func (r GenerationRequest) Validate() error {
	if r.JobDescription == "" || r.ResumeInfo == "" {
		return ErrMissingFields
	}
	return nil
}

// GenerationResult is the provider output plus the parameters that produced it
type GenerationResult struct {
	Output     string
	Parameters LLMParameters
	Usage      llm.Usage
	Duration   time.Duration
}

// GenerationService turns a GenerationRequest into one provider call
type GenerationService struct {
	provider llm.Provider
	prompts  *prompt.Builder
	tracer   *observability.LangfuseClient
	recorder metrics.Recorder
}

// NewGenerationService wires the service. tracer and recorder may be nil.
func NewGenerationService(
	provider llm.Provider,
	tracer *observability.LangfuseClient,
	recorder metrics.Recorder,
) (*GenerationService, error) {
	if provider == nil {
		return nil, errors.New("generation provider is required")
	}

	builder, err := prompt.NewPromptBuilder()
	if err != nil {
		return nil, err
	}

	if tracer == nil {
		tracer = observability.Disabled()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &GenerationService{
		provider: provider,
		prompts:  builder,
		tracer:   tracer,
		recorder: recorder,
	}, nil
}

// ProviderName returns the name of the underlying provider
func (s *GenerationService) ProviderName() string {
	return s.provider.Name()
}

// BuildPrompt renders the prompt for req
func (s *GenerationService) BuildPrompt(req GenerationRequest) (string, error) {
	return s.prompts.BuildPrompt(prompt.Input{
		JobDescription: req.JobDescription,
		ResumeInfo:     req.ResumeInfo,
		TargetRole:     req.TargetRole,
	})
}

// Generate validates req, renders the prompt and calls the provider once.
// The output is returned exactly as the provider produced it.
// Cancellation of ctx does not abort a call that has already been issued.
func (s *GenerationService) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := GetLLMParameters(req.Mode)

	rendered, err := s.BuildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	ctx = context.WithoutCancel(ctx)

	trace := s.tracer.StartTrace(ctx, "hirepulse.generate", map[string]interface{}{
		"mode":  req.Mode,
		"model": params.Model,
	})
	defer trace.Finish()

	generation := trace.Generation(s.provider.Name()+".generate", map[string]interface{}{
		"max_output_tokens": params.MaxOutputTokens,
		"temperature":       params.Temperature,
	})
	defer generation.Finish()

	start := time.Now()
	resp, err := s.provider.Generate(ctx, &llm.GenerationRequest{
		Model:           params.Model,
		Prompt:          rendered,
		MaxOutputTokens: params.MaxOutputTokens,
		Temperature:     params.Temperature,
	})
	duration := time.Since(start)

	if err != nil {
		s.recorder.RecordGenerationDuration(ctx, params.Model, duration, false)
		generation.SetLevel("ERROR")
		generation.Metadata(map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if resp == nil {
		s.recorder.RecordGenerationDuration(ctx, params.Model, duration, false)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, llm.ErrEmptyResponse)
	}

	s.recorder.RecordGenerationDuration(ctx, params.Model, duration, true)
	s.recorder.RecordTokenUsage(ctx, params.Model,
		resp.Usage.TotalTokens, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	generation.LogGeminiResponse(params.Model, rendered, resp, map[string]interface{}{
		"mode":        req.Mode,
		"duration_ms": duration.Milliseconds(),
	})

	return &GenerationResult{
		Output:     resp.Text,
		Parameters: params,
		Usage:      resp.Usage,
		Duration:   duration,
	}, nil
}
