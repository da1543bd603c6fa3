package main

import (
	"context"
	"log"
	"net/http"

	"github.com/havenmind/haven-agent/internal/adapters/llm"
	"github.com/havenmind/haven-agent/internal/adapters/stt"
	"github.com/havenmind/haven-agent/internal/adapters/tts"
	"github.com/havenmind/haven-agent/internal/app/orchestrator"
	"github.com/havenmind/haven-agent/internal/app/session"
	"github.com/havenmind/haven-agent/internal/catalog"
	"github.com/havenmind/haven-agent/internal/config"
	"github.com/havenmind/haven-agent/internal/domain"

	httpadapter "github.com/havenmind/haven-agent/internal/adapters/http"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Persona: built-in defaults, or an externalized YAML override.
	instruction, err := catalog.Load(cfg.PersonaFile)
	if err != nil {
		log.Fatalf("error loading persona: %v", err)
	}
	techniques := catalog.Techniques()

	// Completion: mock or Gemini, by ENV (useful for dev).
	var completion domain.CompletionClient
	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK completion client")
		completion = llm.NewMockCompletion()
	} else {
		log.Println("[LLM] Using Gemini completion client")
		completion, err = llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
	}

	// Transcription: only when a whisper endpoint is configured.
	var transcriber domain.Transcriber
	if cfg.WhisperURL != "" {
		log.Printf("[STT] Using whisper transcription at %s", cfg.WhisperURL)
		transcriber = stt.NewWhisperClient(cfg.WhisperURL, "", "")
	} else {
		log.Println("[STT] Transcription disabled (HAVEN_WHISPER_URL not set)")
	}

	// Speech synthesis: only when a Murf key is configured.
	var synthesizer domain.SpeechSynthesizer
	if cfg.MurfAPIKey != "" {
		log.Println("[TTS] Using Murf speech synthesis")
		synthesizer, err = tts.NewMurfClient(cfg.MurfAPIKey)
		if err != nil {
			log.Fatalf("error initializing Murf client: %v", err)
		}
	} else {
		log.Println("[TTS] Speech synthesis disabled (MURF_API_KEY not set)")
	}

	registry := session.NewRegistry(instruction, techniques)
	orch := orchestrator.New(completion).WithCompletionTimeout(cfg.CompletionTimeout)

	handler := httpadapter.NewServer(
		registry,
		orch,
		transcriber,
		synthesizer,
		cfg.AudioDir,
		domain.SpeechParams{
			VoiceID:     cfg.VoiceID,
			Style:       cfg.VoiceStyle,
			Format:      "MP3",
			SampleRate:  44100,
			ChannelType: "MONO",
			Rate:        cfg.VoiceRate,
			Pitch:       cfg.VoicePitch,
			Variation:   4,
		},
	)

	addr := ":" + cfg.Port
	log.Println("Haven API listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
