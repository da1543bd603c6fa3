// Package orchestrator runs one conversational turn: safety-gates incoming
// user messages, accumulates them on the session transcript, calls the
// completion service exactly once, and assembles the result payload.
package orchestrator

import (
	"context"
	"strings"
	"time"

	"github.com/havenmind/haven-agent/internal/app/safety"
	"github.com/havenmind/haven-agent/internal/app/session"
	"github.com/havenmind/haven-agent/internal/domain"
	"github.com/havenmind/haven-agent/internal/observability"
)

const defaultCompletionTimeout = 30 * time.Second

// UserInput is one orchestration request's worth of user messages: a
// single utterance or an ordered batch.
type UserInput struct {
	messages []string
}

// SingleMessage wraps one utterance.
func SingleMessage(text string) UserInput {
	return UserInput{messages: []string{text}}
}

// BatchMessages wraps an ordered sequence of utterances.
func BatchMessages(texts []string) UserInput {
	msgs := make([]string, len(texts))
	copy(msgs, texts)
	return UserInput{messages: msgs}
}

// Messages returns the ordered utterances in this input.
func (in UserInput) Messages() []string {
	return in.messages
}

// Orchestrator drives turns against sessions held in a registry.
type Orchestrator struct {
	completion        domain.CompletionClient
	completionTimeout time.Duration
}

func New(completion domain.CompletionClient) *Orchestrator {
	return &Orchestrator{
		completion:        completion,
		completionTimeout: defaultCompletionTimeout,
	}
}

// WithCompletionTimeout overrides the per-call completion deadline.
// Non-positive durations keep the default.
func (o *Orchestrator) WithCompletionTimeout(d time.Duration) *Orchestrator {
	if d > 0 {
		o.completionTimeout = d
	}
	return o
}

// RunTurn processes the input's messages in order against sess, then calls
// the completion service once on the accumulated transcript.
//
// Per message: blanks are skipped entirely; otherwise the trimmed text is
// safety-checked and appended as a user turn. A triggered safety response
// is both collected as a warning and appended as an assistant turn, so the
// completion call sees the safety acknowledgement as context — it does not
// short-circuit the completion.
//
// On completion failure no assistant turn is appended: the transcript keeps
// exactly the user turns and safety responses accumulated so far, so a
// retry re-invokes completion without duplicating them.
//
// Turns against the same session serialize; distinct sessions run in
// parallel.
func (o *Orchestrator) RunTurn(ctx context.Context, sess *session.Session, input UserInput) (domain.OrchestrationResult, error) {
	sess.Lock()
	defer sess.Unlock()

	ctx = observability.WithConversationID(ctx, string(sess.ID()))
	log := observability.LoggerFromContext(ctx)

	introText := sess.PhaseIntro()
	protocol := sess.Instruction().SafetyProtocol

	var warnings []string
	for _, msg := range input.Messages() {
		trimmed := strings.TrimSpace(msg)
		if trimmed == "" {
			continue
		}

		warning, triggered := safety.Check(trimmed, protocol)

		if err := sess.AppendUser(trimmed); err != nil {
			return domain.OrchestrationResult{}, err
		}

		if triggered {
			log.Warn("safety trigger matched")
			warnings = append(warnings, warning)
			if err := sess.AppendAssistant(warning); err != nil {
				return domain.OrchestrationResult{}, err
			}
		}
	}

	// Completion runs unconditionally, even for an empty input: the
	// transcript as accumulated is what the model answers to.
	cctx, cancel := context.WithTimeout(ctx, o.completionTimeout)
	defer cancel()

	solution, err := o.completion.Complete(cctx, sess.Transcript())
	if err != nil {
		log.Error("completion failed", "error", err)
		if domain.IsKind(err, domain.KindCompletion) {
			return domain.OrchestrationResult{}, err
		}
		return domain.OrchestrationResult{}, domain.WrapError(domain.KindCompletion, "completion call failed", err)
	}

	if err := sess.AppendAssistant(solution); err != nil {
		return domain.OrchestrationResult{}, err
	}

	log.Info("turn completed",
		"messages", len(input.Messages()),
		"safety_warnings", len(warnings),
		"transcript_len", sess.Len())

	return domain.OrchestrationResult{
		IntroText:      introText,
		SafetyWarnings: warnings,
		SolutionText:   solution,
	}, nil
}
