// Package session holds per-conversation state: the append-only transcript
// seeded with the persona preamble, plus the registry that keys sessions by
// conversation id so concurrent conversations never share state.
package session

import (
	"strings"
	"sync"

	"github.com/havenmind/haven-agent/internal/domain"
)

// Session owns one transcript and read-only references to the shared
// instruction and technique list. All methods are safe for concurrent use;
// callers that need a whole orchestration turn to serialize should hold
// Lock for its duration.
type Session struct {
	id          domain.ConversationID
	instruction domain.Instruction
	techniques  []domain.Technique

	mu         sync.Mutex
	transcript []domain.Turn

	// turnMu serializes whole orchestration turns, not single appends.
	turnMu sync.Mutex
}

// New creates a session whose transcript starts with a single system turn
// built from the instruction's text blocks in fixed order. The assessment
// framework is deliberately left out of the preamble; it surfaces through
// PhaseIntro instead.
func New(id domain.ConversationID, instruction domain.Instruction, techniques []domain.Technique) *Session {
	preamble := strings.Join([]string{
		instruction.Role,
		instruction.CorePrinciples,
		instruction.TherapeuticApproach,
		instruction.CommunicationStyle,
		instruction.InterventionStrategies,
		instruction.EthicalBoundaries,
		instruction.CrisisManagement,
	}, "\n") + "\n"

	return &Session{
		id:          id,
		instruction: instruction,
		techniques:  techniques,
		transcript: []domain.Turn{
			{Speaker: domain.SpeakerSystem, Text: preamble},
		},
	}
}

func (s *Session) ID() domain.ConversationID {
	return s.id
}

// Instruction returns the shared persona configuration.
func (s *Session) Instruction() domain.Instruction {
	return s.instruction
}

// Techniques returns the shared technique list. Informational only.
func (s *Session) Techniques() []domain.Technique {
	return s.techniques
}

// PhaseIntro derives the phase introduction from the instruction alone;
// it does not depend on transcript state.
func (s *Session) PhaseIntro() string {
	return s.instruction.CorePrinciples + "\n" + s.instruction.AssessmentFramework
}

// AppendUser pushes a user turn. Empty-after-trim text is a programming
// error here: the orchestrator skips blanks before ever reaching state.
func (s *Session) AppendUser(text string) error {
	return s.append(domain.SpeakerUser, text)
}

// AppendAssistant pushes an assistant turn.
func (s *Session) AppendAssistant(text string) error {
	return s.append(domain.SpeakerAssistant, text)
}

func (s *Session) append(speaker domain.Speaker, text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.NewError(domain.KindInvalidTurn, "empty text appended to transcript")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, domain.Turn{Speaker: speaker, Text: text})
	return nil
}

// Transcript returns a defensive copy of the conversation history.
func (s *Session) Transcript() []domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Len reports the current transcript length.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcript)
}

// Lock serializes whole orchestration turns on this session. Turns against
// distinct sessions proceed in parallel.
func (s *Session) Lock() {
	s.turnMu.Lock()
}

func (s *Session) Unlock() {
	s.turnMu.Unlock()
}
