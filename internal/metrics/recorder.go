package metrics

import (
	"context"
	"time"
)

// Recorder receives request and generation metrics
type Recorder interface {
	RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration)
	RecordTokenUsage(ctx context.Context, model string, totalTokens, inputTokens, outputTokens int)
	RecordGenerationDuration(ctx context.Context, model string, duration time.Duration, success bool)
}

// Multi fans every call out to each recorder in order
type Multi []Recorder

func (m Multi) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	for _, r := range m {
		r.RecordAPIRequest(ctx, endpoint, statusCode, duration)
	}
}

func (m Multi) RecordTokenUsage(ctx context.Context, model string, totalTokens, inputTokens, outputTokens int) {
	for _, r := range m {
		r.RecordTokenUsage(ctx, model, totalTokens, inputTokens, outputTokens)
	}
}

func (m Multi) RecordGenerationDuration(ctx context.Context, model string, duration time.Duration, success bool) {
	for _, r := range m {
		r.RecordGenerationDuration(ctx, model, duration, success)
	}
}

// Nop discards everything
type Nop struct{}

func (Nop) RecordAPIRequest(context.Context, string, int, time.Duration) {}
func (Nop) RecordTokenUsage(context.Context, string, int, int, int) {}
func (Nop) RecordGenerationDuration(context.Context, string, time.Duration, bool) {}
