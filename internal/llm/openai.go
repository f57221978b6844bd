package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/codepair-io/codepair/internal/pair_errors"
	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

const (
	KeyOpenAIAPIKey = "OPENAI_API_KEY"
	KeyOpenAIModel  = "OPENAI_MODEL"
	KeyOpenAIURL    = "OPENAI_BASE_URL"

	DefaultModel = "gpt-3.5-turbo-1106"

	// sampling temperature for every generation request
	completionTemperature = 0.7

	// a completion call never suspends longer than this
	completionTimeout = 45 * time.Second
)

// OpenAIProvider implements Provider using the OpenAI chat-completion API.
// It also talks to any OpenAI-compatible endpoint via OPENAI_BASE_URL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewOpenAIProvider fails with ErrConfiguration when no API key is
// available. The check happens here, once, so a misconfigured process
// never reaches the network.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf(
			"%w, %s is not set",
			pair_errors.ErrConfiguration,
			KeyOpenAIAPIKey,
		)
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// NewOpenAIProviderFromEnv reads the provider configuration from the
// process environment.
func NewOpenAIProviderFromEnv() (*OpenAIProvider, error) {
	return NewOpenAIProvider(OpenAIConfig{
		APIKey:  os.Getenv(KeyOpenAIAPIKey),
		BaseURL: os.Getenv(KeyOpenAIURL),
		Model:   os.Getenv(KeyOpenAIModel),
	})
}

func (p *OpenAIProvider) Complete(
	ctx context.Context,
	req CompletionRequest,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: completionTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		err = fmt.Errorf(
			"%w, completion reply has no choices",
			pair_errors.ErrUpstream,
		)
		log.Error(err)
		return "", err
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

// mapOpenAIError surfaces the upstream diagnostic text with ErrUpstream.
// Context errors pass through untouched so callers can tell a timeout
// from a refusal.
func mapOpenAIError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		mapped := fmt.Errorf(
			"%w, status %d, %s",
			pair_errors.ErrUpstream,
			apiErr.HTTPStatusCode,
			apiErr.Message,
		)
		log.Error(mapped)
		return mapped
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		mapped := fmt.Errorf(
			"%w, status %d, %s",
			pair_errors.ErrUpstream,
			reqErr.HTTPStatusCode,
			string(reqErr.Body),
		)
		log.Error(mapped)
		return mapped
	}

	// a 2xx reply whose body is not valid JSON fails envelope decoding
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		mapped := fmt.Errorf(
			"%w, reply body is not valid JSON, %v",
			pair_errors.ErrMalformedResponse,
			err,
		)
		log.Error(mapped)
		return mapped
	}

	mapped := fmt.Errorf("%w, %v", pair_errors.ErrUpstream, err)
	log.Error(mapped)
	return mapped
}
