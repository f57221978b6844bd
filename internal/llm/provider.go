// Package llm wraps the external chat-completion endpoint behind a small
// provider interface so the generation pipeline can be exercised against
// a deterministic mock in tests.
package llm

import "context"

// Provider sends one two-message conversation to a completion endpoint
// and returns the reply text verbatim. No interpretation happens here.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	ModelID() string
}

// CompletionRequest is a single system+user conversation.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
}
