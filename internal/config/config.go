package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	GeminiAPIKey      string
	ModelName         string
	UseMockLLM        bool
	CompletionTimeout time.Duration

	WhisperURL string // blank disables transcription
	MurfAPIKey string // blank disables speech synthesis

	AudioDir    string
	PersonaFile string // optional YAML persona override

	VoiceID    string
	VoiceStyle string
	VoiceRate  float64
	VoicePitch float64
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid int for %s: %q, using default %d", key, v, def)
		return def
	}
	return n
}

func getFloatEnv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid float for %s: %q, using default %v", key, v, def)
		return def
	}
	return f
}

// Load reads .env (if present) plus env vars and builds the config.
func Load() *Config {
	// Same convention as the original deployment: secrets live in .env
	// during local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("HAVEN_PORT", "8080"),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		ModelName:         getEnv("HAVEN_MODEL_NAME", "gemini-2.5-flash"),
		UseMockLLM:        getBoolEnv("HAVEN_USE_MOCK_LLM", false),
		CompletionTimeout: time.Duration(getIntEnv("HAVEN_COMPLETION_TIMEOUT", 30)) * time.Second,

		WhisperURL: getEnv("HAVEN_WHISPER_URL", ""),
		MurfAPIKey: getEnv("MURF_API_KEY", ""),

		AudioDir:    getEnv("HAVEN_AUDIO_DIR", "audios"),
		PersonaFile: getEnv("HAVEN_PERSONA_FILE", ""),

		VoiceID:    getEnv("HAVEN_VOICE_ID", "en-US-natalie"),
		VoiceStyle: getEnv("HAVEN_VOICE_STYLE", "empathetic"),
		VoiceRate:  getFloatEnv("HAVEN_VOICE_RATE", -6.0),
		VoicePitch: getFloatEnv("HAVEN_VOICE_PITCH", -5.0),
	}

	if !cfg.UseMockLLM && cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY must be set unless HAVEN_USE_MOCK_LLM=1")
	}

	return cfg
}
