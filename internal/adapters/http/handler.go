package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/havenmind/haven-agent/internal/app/orchestrator"
	"github.com/havenmind/haven-agent/internal/app/session"
	"github.com/havenmind/haven-agent/internal/domain"
	"github.com/havenmind/haven-agent/internal/observability"
)

const responseAudioFile = "ai_response.mp3"

// Server is the request façade: it validates inbound request shape and
// dispatches to the orchestrator and the transcription / speech-synthesis
// collaborators.
type Server struct {
	registry *session.Registry
	orch     *orchestrator.Orchestrator

	transcriber domain.Transcriber       // nil when transcription is not configured
	synthesizer domain.SpeechSynthesizer // nil when synthesis is not configured

	audioDir     string
	speechParams domain.SpeechParams
}

func NewServer(
	registry *session.Registry,
	orch *orchestrator.Orchestrator,
	transcriber domain.Transcriber,
	synthesizer domain.SpeechSynthesizer,
	audioDir string,
	speechParams domain.SpeechParams,
) http.Handler {
	s := &Server{
		registry:     registry,
		orch:         orch,
		transcriber:  transcriber,
		synthesizer:  synthesizer,
		audioDir:     audioDir,
		speechParams: speechParams,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleRoot)

	return chainMiddlewares(mux, withLogging, withCORS, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	UserMessage    string `json:"user_message"`
	DType          string `json:"dtype"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type chatMessageResponse struct {
	Content        string `json:"content"`
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
}

type chatAudioResponse struct {
	Content         string `json:"content"`
	AudioFilepath   string `json:"audio_filepath"`
	TranscribedText string `json:"transcribed_text"`
	Type            string `json:"type"`
	ConversationID  string `json:"conversation_id"`
}

type healthResponse struct {
	Status        string `json:"status"`
	Completion    bool   `json:"completion"`
	Transcription bool   `json:"transcription"`
	Synthesis     bool   `json:"synthesis"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.DType != string(domain.KindAudio) && req.DType != string(domain.KindMessage) {
		badRequest(w, `dtype must be "audio" or "message"`)
		return
	}
	if strings.TrimSpace(req.UserMessage) == "" {
		badRequest(w, "user_message is required")
		return
	}

	ctx := r.Context()
	log := observability.LoggerFromContext(ctx)

	// For audio requests the user_message is a reference to an audio
	// resource; transcription reduces both branches to plain text.
	userText := req.UserMessage
	transcribed := ""
	if req.DType == string(domain.KindAudio) {
		if s.transcriber == nil {
			writeError(w, domain.NewError(domain.KindService, "transcription: service not configured"))
			return
		}
		text, err := s.transcriber.Transcribe(ctx, req.UserMessage)
		if err != nil {
			log.Error("transcription failed", "error", err)
			writeError(w, stagePrefixed("transcription", err))
			return
		}
		userText = text
		transcribed = text
	}

	sess := s.registry.GetOrCreate(domain.ConversationID(req.ConversationID))

	result, err := s.orch.RunTurn(ctx, sess, orchestrator.SingleMessage(userText))
	if err != nil {
		log.Error("orchestration failed", "error", err)
		writeError(w, stagePrefixed("completion", err))
		return
	}

	if req.DType == string(domain.KindMessage) {
		writeJSON(w, http.StatusOK, chatMessageResponse{
			Content:        result.SolutionText,
			Type:           string(domain.KindMessage),
			ConversationID: string(sess.ID()),
		})
		return
	}

	if s.synthesizer == nil {
		writeError(w, domain.NewError(domain.KindService, "synthesis: service not configured"))
		return
	}

	audio, err := s.synthesizer.Synthesize(ctx, result.SolutionText, s.speechParams)
	if err != nil {
		log.Error("speech synthesis failed", "error", err)
		writeError(w, stagePrefixed("synthesis", err))
		return
	}

	path, err := s.synthesizer.SaveAudio(audio, s.audioDir, responseAudioFile)
	if err != nil {
		log.Error("saving audio failed", "error", err)
		writeError(w, stagePrefixed("synthesis", err))
		return
	}

	writeJSON(w, http.StatusOK, chatAudioResponse{
		Content:         result.SolutionText,
		AudioFilepath:   path,
		TranscribedText: transcribed,
		Type:            string(domain.KindAudio),
		ConversationID:  string(sess.ID()),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Completion:    s.orch != nil,
		Transcription: s.transcriber != nil,
		Synthesis:     s.synthesizer != nil,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service":       "haven-agent",
		"status":        "running",
		"completion":    s.orch != nil,
		"transcription": s.transcriber != nil,
		"synthesis":     s.synthesizer != nil,
	})
}

// ─────────────────────────────────────────────
// HTTP helpers
// ─────────────────────────────────────────────

// stagePrefixed names the failed pipeline stage in the error message so a
// caller can retry only that stage. Validation and not-found errors pass
// through untouched.
func stagePrefixed(stage string, err error) error {
	kind := domain.KindOf(err)
	if kind == domain.KindValidation || kind == domain.KindNotFound {
		return err
	}
	return domain.WrapError(kind, stage, err)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindNotFound:
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
