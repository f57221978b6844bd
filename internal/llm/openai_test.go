package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/codepair-io/codepair/internal/pair_errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIProviderRequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{})
	assert.ErrorIs(t, err, pair_errors.ErrConfiguration)
	assert.Contains(t, err.Error(), KeyOpenAIAPIKey)
}

func TestNewOpenAIProviderDefaultsModel(t *testing.T) {
	provider, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, provider.ModelID())

	provider, err = NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", provider.ModelID())
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)
	return provider
}

func TestCompleteSendsBothRoles(t *testing.T) {
	var got openai.ChatCompletionRequest
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: `{"title": "t"}`}},
			},
		})
	})

	reply, err := provider.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "you are a generator",
		UserPrompt:   "generate one problem",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"title": "t"}`, reply)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "you are a generator", got.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[1].Role)
	assert.Equal(t, "generate one problem", got.Messages[1].Content)
	assert.InDelta(t, completionTemperature, got.Temperature, 0.001)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, got.ResponseFormat.Type)
}

func TestCompleteSurfacesUpstreamDiagnostic(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("rate limited"))
	})

	_, err := provider.Complete(context.Background(), CompletionRequest{UserPrompt: "p"})
	assert.ErrorIs(t, err, pair_errors.ErrUpstream)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompleteUpstreamAPIError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded", "type": "insufficient_quota"}}`))
	})

	_, err := provider.Complete(context.Background(), CompletionRequest{UserPrompt: "p"})
	assert.ErrorIs(t, err, pair_errors.ErrUpstream)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestCompleteNonJsonSuccessBody(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>gateway</html>"))
	})

	_, err := provider.Complete(context.Background(), CompletionRequest{UserPrompt: "p"})
	assert.ErrorIs(t, err, pair_errors.ErrMalformedResponse)
}

func TestCompleteEmptyChoices(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	})

	_, err := provider.Complete(context.Background(), CompletionRequest{UserPrompt: "p"})
	assert.ErrorIs(t, err, pair_errors.ErrUpstream)
	assert.Contains(t, err.Error(), "no choices")
}

func TestCompleteHonorsCallerCancellation(t *testing.T) {
	var hits atomic.Int32
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Complete(ctx, CompletionRequest{UserPrompt: "p"})
	assert.ErrorIs(t, err, context.Canceled)
	// a single attempt at most, canceled calls are never retried
	assert.LessOrEqual(t, hits.Load(), int32(1))
}

func TestMockProviderFIFO(t *testing.T) {
	provider := NewMockProvider(
		MockReply{Content: "first"},
		MockReply{Content: "second"},
	)

	reply, err := provider.Complete(context.Background(), CompletionRequest{UserPrompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "first", reply)

	reply, err = provider.Complete(context.Background(), CompletionRequest{UserPrompt: "b"})
	require.NoError(t, err)
	assert.Equal(t, "second", reply)

	_, err = provider.Complete(context.Background(), CompletionRequest{UserPrompt: "c"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, 3, provider.CallCount())
	assert.Equal(t, "a", provider.Calls[0].UserPrompt)
}
