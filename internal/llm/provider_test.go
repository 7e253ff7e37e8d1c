package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockProvider is a test implementation of the Provider interface
type MockProvider struct {
	name         string
	generateFunc func(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, request)
	}
	return &GenerationResponse{}, nil
}

func TestProviderInterface(t *testing.T) {
	var provider Provider = &MockProvider{name: "mock"}
	assert.Equal(t, "mock", provider.Name())

	var _ Provider = (*GeminiProvider)(nil)
}

func TestMockProviderGenerate(t *testing.T) {
	callCount := 0
	mock := &MockProvider{
		name: "test",
		generateFunc: func(_ context.Context, request *GenerationRequest) (*GenerationResponse, error) {
			callCount++
			require.Equal(t, "test-model", request.Model)
			require.Equal(t, int32(5000), request.MaxOutputTokens)
			return &GenerationResponse{Text: "generated", Model: request.Model}, nil
		},
	}

	resp, err := mock.Generate(context.Background(), &GenerationRequest{
		Model:           "test-model",
		Prompt:          "prompt",
		MaxOutputTokens: 5000,
		Temperature:     0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, "generated", resp.Text)
}
