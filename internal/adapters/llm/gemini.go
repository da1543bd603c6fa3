package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/havenmind/haven-agent/internal/domain"
)

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a CompletionClient backed by the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete implements domain.CompletionClient against Gemini.
func (g *GeminiClient) Complete(ctx context.Context, transcript []domain.Turn) (string, error) {
	// History as conversation. The persona preamble travels as a model
	// turn, same as assistant replies.
	var contents []*genai.Content
	for _, turn := range transcript {
		var role genai.Role
		switch turn.Speaker {
		case domain.SpeakerUser:
			role = genai.RoleUser
		case domain.SpeakerSystem, domain.SpeakerAssistant:
			role = genai.RoleModel
		default:
			role = genai.RoleUser
		}

		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	// Deterministic generation (without genai.Ptr to avoid generic issues).
	temp := float32(0)
	outputTokens := int32(2048)

	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: outputTokens,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", domain.WrapError(domain.KindCompletion, "gemini generate content", err)
	}

	text := res.Text()
	if text == "" {
		return "", domain.NewError(domain.KindCompletion, "gemini returned empty text")
	}

	return text, nil
}
