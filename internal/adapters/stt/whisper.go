// Package stt is the transcription collaborator boundary: it turns an
// audio resource reference into plain text via a Whisper-compatible HTTP
// service.
package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/havenmind/haven-agent/internal/domain"
)

const defaultTimeout = 30 * time.Second

// WhisperClient talks to an OpenAI-style /v1/audio/transcriptions endpoint
// (whisper.cpp server, OpenAI, or any compatible deployment).
type WhisperClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewWhisperClient creates a transcription client. apiKey may be blank for
// self-hosted servers that skip auth.
func NewWhisperClient(baseURL, apiKey, model string) *WhisperClient {
	if model == "" {
		model = "whisper-1"
	}
	return &WhisperClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio file at audioPath and returns its text.
// A missing file fails before any network call.
func (c *WhisperClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.NewError(domain.KindNotFound,
				fmt.Sprintf("audio file not found: %s", audioPath))
		}
		return "", domain.WrapError(domain.KindService, "opening audio file", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", domain.WrapError(domain.KindService, "building transcription request", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", domain.WrapError(domain.KindService, "reading audio file", err)
	}
	if err := mw.WriteField("model", c.model); err != nil {
		return "", domain.WrapError(domain.KindService, "building transcription request", err)
	}
	if err := mw.Close(); err != nil {
		return "", domain.WrapError(domain.KindService, "building transcription request", err)
	}

	url := c.baseURL + "/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", domain.WrapError(domain.KindService, "building transcription request", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(domain.KindService, "transcription request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", domain.NewError(domain.KindService,
			fmt.Sprintf("transcription service returned %d: %s", resp.StatusCode, raw))
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", domain.WrapError(domain.KindService, "decoding transcription response", err)
	}

	return tr.Text, nil
}
