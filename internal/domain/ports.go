package domain

import "context"

// CompletionClient defines how the core application talks to the LLM
// completion service. One call maps a full transcript to new assistant text.
// Implementations must wrap every provider failure in a CompletionError.
type CompletionClient interface {
	Complete(ctx context.Context, transcript []Turn) (string, error)
}

// Transcriber converts an audio resource reference to plain text.
// A missing resource fails with a NotFoundError, anything else with a
// ServiceError.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// SpeechParams are the voice/style parameters accepted by the synthesis
// provider. Rate and Pitch live in [-50, 50]; SampleRate must be one of
// 8000, 24000, 44100, 48000; ChannelType is MONO or STEREO.
type SpeechParams struct {
	VoiceID     string
	Style       string
	Format      string
	SampleRate  int
	ChannelType string
	Rate        float64
	Pitch       float64
	Variation   int
}

// SpeechSynthesizer turns assistant text into audio bytes and persists
// them as a durable artifact under a caller-chosen folder/filename.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string, params SpeechParams) ([]byte, error)
	SaveAudio(audio []byte, folder, filename string) (string, error)
}
