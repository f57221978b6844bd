package llm

import (
	"context"
	"sync"
)

// MockReply is a canned reply for the MockProvider.
type MockReply struct {
	Content string
	Err     error
}

// MockProvider is a deterministic Provider for tests. It returns canned
// replies in FIFO order and records every request it receives.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   []CompletionRequest
}

func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Complete(_ context.Context, req CompletionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.replies) == 0 {
		return "", context.DeadlineExceeded
	}

	reply := m.replies[0]
	m.replies = m.replies[1:]

	if reply.Err != nil {
		return "", reply.Err
	}
	return reply.Content, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount reports how many completion requests were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
