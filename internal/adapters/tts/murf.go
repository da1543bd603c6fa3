// Package tts is the speech-synthesis collaborator boundary: assistant
// text goes out to the Murf generate endpoint and comes back as an audio
// artifact persisted on disk.
package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/havenmind/haven-agent/internal/domain"
)

const (
	defaultBaseURL = "https://api.murf.ai/v1/speech/generate"
	defaultTimeout = 30 * time.Second
)

// MurfClient calls the Murf speech generation API.
type MurfClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewMurfClient(apiKey string) (*MurfClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("murf api key is required")
	}
	return &MurfClient{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// WithBaseURL overrides the endpoint. Used by tests.
func (c *MurfClient) WithBaseURL(url string) *MurfClient {
	c.baseURL = url
	return c
}

type generatePayload struct {
	Text           string  `json:"text"`
	VoiceID        string  `json:"voiceId"`
	Style          string  `json:"style,omitempty"`
	Format         string  `json:"format"`
	EncodeAsBase64 bool    `json:"encodeAsBase64"`
	SampleRate     int     `json:"sampleRate"`
	ChannelType    string  `json:"channelType"`
	Rate           float64 `json:"rate"`
	Pitch          float64 `json:"pitch"`
	Variation      int     `json:"variation"`
}

type generateResponse struct {
	AudioFile            string  `json:"audioFile"`
	EncodedAudio         string  `json:"encodedAudio"`
	AudioLengthInSeconds float64 `json:"audioLengthInSeconds"`
	Warning              string  `json:"warning"`
}

var validSampleRates = map[int]bool{8000: true, 24000: true, 44100: true, 48000: true}

// validateParams enforces the provider's documented limits before any
// network call.
func validateParams(text string, p domain.SpeechParams) error {
	switch {
	case text == "":
		return domain.NewError(domain.KindValidation, "text is required for speech synthesis")
	case p.VoiceID == "":
		return domain.NewError(domain.KindValidation, "voice id is required for speech synthesis")
	case p.Rate < -50 || p.Rate > 50:
		return domain.NewError(domain.KindValidation, "rate must be between -50 and +50")
	case p.Pitch < -50 || p.Pitch > 50:
		return domain.NewError(domain.KindValidation, "pitch must be between -50 and +50")
	case !validSampleRates[p.SampleRate]:
		return domain.NewError(domain.KindValidation,
			fmt.Sprintf("sample rate %d is invalid", p.SampleRate))
	case p.ChannelType != "MONO" && p.ChannelType != "STEREO":
		return domain.NewError(domain.KindValidation, "channel type must be MONO or STEREO")
	}
	return nil
}

// Synthesize generates speech for text and returns the decoded audio bytes.
func (c *MurfClient) Synthesize(ctx context.Context, text string, params domain.SpeechParams) ([]byte, error) {
	if err := validateParams(text, params); err != nil {
		return nil, err
	}

	format := params.Format
	if format == "" {
		format = "MP3"
	}

	payload := generatePayload{
		Text:           text,
		VoiceID:        params.VoiceID,
		Style:          params.Style,
		Format:         format,
		EncodeAsBase64: true,
		SampleRate:     params.SampleRate,
		ChannelType:    params.ChannelType,
		Rate:           params.Rate,
		Pitch:          params.Pitch,
		Variation:      params.Variation,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.WrapError(domain.KindService, "encoding synthesis request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(raw))
	if err != nil {
		return nil, domain.WrapError(domain.KindService, "building synthesis request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(domain.KindService, "synthesis request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, domain.NewError(domain.KindService,
			fmt.Sprintf("speech service returned %d: %s", resp.StatusCode, body))
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, domain.WrapError(domain.KindService, "decoding synthesis response", err)
	}
	if gr.EncodedAudio == "" {
		return nil, domain.NewError(domain.KindService, "speech service returned no audio")
	}

	audio, err := base64.StdEncoding.DecodeString(gr.EncodedAudio)
	if err != nil {
		return nil, domain.WrapError(domain.KindService, "decoding synthesized audio", err)
	}

	return audio, nil
}

// SaveAudio writes audio under folder/filename, overwriting if present,
// and returns the full path.
func (c *MurfClient) SaveAudio(audio []byte, folder, filename string) (string, error) {
	return saveAudio(audio, folder, filename)
}

func saveAudio(audio []byte, folder, filename string) (string, error) {
	if len(audio) == 0 {
		return "", domain.NewError(domain.KindService, "no audio bytes to save")
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", domain.WrapError(domain.KindService, "creating audio folder", err)
	}

	path := filepath.Join(folder, filename)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", domain.WrapError(domain.KindService, "writing audio file", err)
	}

	return path, nil
}
