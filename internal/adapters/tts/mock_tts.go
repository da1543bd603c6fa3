package tts

import (
	"context"

	"github.com/havenmind/haven-agent/internal/domain"
)

// MockSynthesizer returns fixed bytes without touching the network.
// Persistence still goes through the real save path.
type MockSynthesizer struct {
	Audio []byte
}

func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{Audio: []byte("mock-audio")}
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text string, params domain.SpeechParams) ([]byte, error) {
	if err := validateParams(text, params); err != nil {
		return nil, err
	}
	return m.Audio, nil
}

func (m *MockSynthesizer) SaveAudio(audio []byte, folder, filename string) (string, error) {
	return saveAudio(audio, folder, filename)
}
