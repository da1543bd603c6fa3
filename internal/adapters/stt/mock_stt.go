package stt

import (
	"context"
	"fmt"
	"os"

	"github.com/havenmind/haven-agent/internal/domain"
)

// MockTranscriber returns a fixed transcript for any existing audio file.
// The file-existence check is kept so the not-found path stays testable.
type MockTranscriber struct {
	Text string
}

func NewMockTranscriber(text string) *MockTranscriber {
	if text == "" {
		text = "Hello, how are you feeling today?"
	}
	return &MockTranscriber{Text: text}
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", domain.NewError(domain.KindNotFound,
			fmt.Sprintf("audio file not found: %s", audioPath))
	}
	return m.Text, nil
}
