package llm

import (
	"context"
	"fmt"

	"github.com/havenmind/haven-agent/internal/domain"
)

// MockCompletion answers with a canned empathetic reply echoing the last
// user turn. Useful for local mode and tests.
type MockCompletion struct{}

func NewMockCompletion() *MockCompletion {
	return &MockCompletion{}
}

func (m *MockCompletion) Complete(ctx context.Context, transcript []domain.Turn) (string, error) {
	last := ""
	for _, turn := range transcript {
		if turn.Speaker == domain.SpeakerUser {
			last = turn.Text
		}
	}
	if last == "" {
		return "I'm here with you. What would you like to talk about today?", nil
	}
	return fmt.Sprintf("I hear you. You said %q. Can you tell me a bit more about how that makes you feel?", last), nil
}
