package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/havenmind/haven-agent/internal/domain"
)

// Registry maps conversation ids to live sessions. It replaces ambient
// process-wide session state with explicit per-conversation ownership.
type Registry struct {
	instruction domain.Instruction
	techniques  []domain.Technique

	mu       sync.RWMutex
	sessions map[domain.ConversationID]*Session
}

// NewRegistry creates an empty registry. Every session it mints shares the
// same instruction and technique list.
func NewRegistry(instruction domain.Instruction, techniques []domain.Technique) *Registry {
	return &Registry{
		instruction: instruction,
		techniques:  techniques,
		sessions:    make(map[domain.ConversationID]*Session),
	}
}

// GetOrCreate returns the session for id, creating it if absent. A blank
// id mints a fresh conversation id.
func (r *Registry) GetOrCreate(id domain.ConversationID) *Session {
	if id == "" {
		id = domain.ConversationID(uuid.NewString())
	}

	r.mu.RLock()
	sess, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return sess
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock: another request may have won the race.
	if sess, ok := r.sessions[id]; ok {
		return sess
	}

	sess = New(id, r.instruction, r.techniques)
	r.sessions[id] = sess
	return sess
}

// Get returns the session for id, or nil if none exists.
func (r *Registry) Get(id domain.ConversationID) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Remove tears down the session for id. A no-op for unknown ids.
func (r *Registry) Remove(id domain.ConversationID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len reports how many sessions are live.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
