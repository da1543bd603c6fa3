package orchestrator_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/havenmind/haven-agent/internal/app/orchestrator"
	"github.com/havenmind/haven-agent/internal/app/session"
	"github.com/havenmind/haven-agent/internal/catalog"
	"github.com/havenmind/haven-agent/internal/domain"
)

// stubCompletion counts calls and can be told to fail.
type stubCompletion struct {
	calls atomic.Int64
	reply string
	err   error
}

func (s *stubCompletion) Complete(ctx context.Context, transcript []domain.Turn) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	if s.reply != "" {
		return s.reply, nil
	}
	return "a considered reply", nil
}

func newTestSession(id string) *session.Session {
	return session.New(domain.ConversationID(id), catalog.Instruction(), catalog.Techniques())
}

func TestRunTurnPlainMessage(t *testing.T) {
	stub := &stubCompletion{}
	orch := orchestrator.New(stub)
	sess := newTestSession("conv-1")

	result, err := orch.RunTurn(context.Background(), sess, orchestrator.SingleMessage("I feel very anxious today."))
	if err != nil {
		t.Fatalf("RunTurn failed: %v", err)
	}

	if result.SolutionText == "" {
		t.Fatal("expected non-empty solution text")
	}
	if len(result.SafetyWarnings) != 0 {
		t.Fatalf("unexpected safety warnings: %v", result.SafetyWarnings)
	}
	if result.IntroText != sess.PhaseIntro() {
		t.Fatal("intro text must equal the session's phase intro")
	}
	if got := stub.calls.Load(); got != 1 {
		t.Fatalf("completion called %d times, want 1", got)
	}

	// 1 system + 1 user + 1 assistant.
	if sess.Len() != 3 {
		t.Fatalf("transcript length = %d, want 3", sess.Len())
	}
}

func TestRunTurnSafetyTriggerStillCallsCompletion(t *testing.T) {
	stub := &stubCompletion{}
	orch := orchestrator.New(stub)
	sess := newTestSession("conv-1")

	result, err := orch.RunTurn(context.Background(), sess,
		orchestrator.SingleMessage("Sometimes I feel like nothing matters."))
	if err != nil {
		t.Fatalf("RunTurn failed: %v", err)
	}

	template := catalog.Instruction().SafetyProtocol.ResponseTemplate
	if len(result.SafetyWarnings) != 1 || result.SafetyWarnings[0] != template {
		t.Fatalf("safety warnings = %v, want exactly the fixed template", result.SafetyWarnings)
	}
	if result.SolutionText == "" {
		t.Fatal("safety trigger must not suppress the completion call")
	}
	if got := stub.calls.Load(); got != 1 {
		t.Fatalf("completion called %d times, want 1", got)
	}

	// 1 system + 1 user + 1 safety assistant + 1 solution assistant.
	if sess.Len() != 4 {
		t.Fatalf("transcript length = %d, want 4", sess.Len())
	}

	transcript := sess.Transcript()
	if transcript[2].Speaker != domain.SpeakerAssistant || transcript[2].Text != template {
		t.Fatal("safety response must be appended as an assistant turn before the completion")
	}
}

func TestRunTurnSkipsBlankMessages(t *testing.T) {
	stub := &stubCompletion{}
	orch := orchestrator.New(stub)
	sess := newTestSession("conv-1")

	result, err := orch.RunTurn(context.Background(), sess,
		orchestrator.BatchMessages([]string{"  ", "I had a rough week.", "", "\t"}))
	if err != nil {
		t.Fatalf("RunTurn failed: %v", err)
	}

	if len(result.SafetyWarnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.SafetyWarnings)
	}
	// 1 system + 1 non-blank user + 1 assistant.
	if sess.Len() != 3 {
		t.Fatalf("transcript length = %d, want 3", sess.Len())
	}
}

func TestRunTurnEmptyInputStillCallsCompletion(t *testing.T) {
	stub := &stubCompletion{}
	orch := orchestrator.New(stub)
	sess := newTestSession("conv-1")

	if _, err := orch.RunTurn(context.Background(), sess, orchestrator.BatchMessages(nil)); err != nil {
		t.Fatalf("RunTurn failed: %v", err)
	}
	if got := stub.calls.Load(); got != 1 {
		t.Fatalf("completion called %d times, want 1", got)
	}
	// 1 system + 1 assistant.
	if sess.Len() != 2 {
		t.Fatalf("transcript length = %d, want 2", sess.Len())
	}
}

func TestRunTurnCompletionFailureLeavesTranscriptRetryable(t *testing.T) {
	stub := &stubCompletion{err: errors.New("rate limited")}
	orch := orchestrator.New(stub)
	sess := newTestSession("conv-1")

	_, err := orch.RunTurn(context.Background(), sess, orchestrator.SingleMessage("I feel stuck."))
	if !domain.IsKind(err, domain.KindCompletion) {
		t.Fatalf("error = %v, want completion kind", err)
	}

	// No assistant turn for the failed call: 1 system + 1 user.
	if sess.Len() != 2 {
		t.Fatalf("transcript length = %d after failure, want 2", sess.Len())
	}

	// A retry re-invokes completion without duplicating user turns.
	stub.err = nil
	if _, err := orch.RunTurn(context.Background(), sess, orchestrator.BatchMessages(nil)); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if sess.Len() != 3 {
		t.Fatalf("transcript length = %d after retry, want 3", sess.Len())
	}
}

// blockingCompletion never answers; it waits for the per-call deadline.
type blockingCompletion struct {
	calls atomic.Int64
}

func (b *blockingCompletion) Complete(ctx context.Context, transcript []domain.Turn) (string, error) {
	b.calls.Add(1)
	<-ctx.Done()
	return "", ctx.Err()
}

func TestRunTurnCompletionDeadline(t *testing.T) {
	stub := &blockingCompletion{}
	orch := orchestrator.New(stub).WithCompletionTimeout(20 * time.Millisecond)
	sess := newTestSession("conv-1")

	start := time.Now()
	_, err := orch.RunTurn(context.Background(), sess, orchestrator.SingleMessage("are you there?"))
	elapsed := time.Since(start)

	if !domain.IsKind(err, domain.KindCompletion) {
		t.Fatalf("error = %v, want completion kind", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want a deadline-exceeded cause", err)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("turn took %v, deadline did not bound the call", elapsed)
	}
	if got := stub.calls.Load(); got != 1 {
		t.Fatalf("completion called %d times, want 1", got)
	}

	// The expired call adds no assistant turn: 1 system + 1 user.
	if sess.Len() != 2 {
		t.Fatalf("transcript length = %d after deadline, want 2", sess.Len())
	}
}

func TestWithCompletionTimeoutIgnoresNonPositive(t *testing.T) {
	stub := &stubCompletion{}
	orch := orchestrator.New(stub).WithCompletionTimeout(0)
	sess := newTestSession("conv-1")

	// A zero override must not produce an already-expired deadline.
	if _, err := orch.RunTurn(context.Background(), sess, orchestrator.SingleMessage("hello")); err != nil {
		t.Fatalf("RunTurn failed: %v", err)
	}
}

func TestRunTurnTranscriptInvariant(t *testing.T) {
	stub := &stubCompletion{}
	orch := orchestrator.New(stub)
	sess := newTestSession("conv-1")

	inputs := []orchestrator.UserInput{
		orchestrator.SingleMessage("I feel anxious."),
		orchestrator.BatchMessages([]string{"Nothing matters anymore.", " ", "I can't sleep."}),
		orchestrator.SingleMessage("Thanks for listening."),
	}

	warnings, completions := 0, 0
	for _, in := range inputs {
		result, err := orch.RunTurn(context.Background(), sess, in)
		if err != nil {
			t.Fatalf("RunTurn failed: %v", err)
		}
		warnings += len(result.SafetyWarnings)
		completions++
	}
	users := 4 // non-blank messages across the three inputs

	want := 1 + users + warnings + completions
	if sess.Len() != want {
		t.Fatalf("transcript length = %d, want %d (1 system + %d users + %d warnings + %d completions)",
			sess.Len(), want, users, warnings, completions)
	}
}

func TestRunTurnSameSessionSerializes(t *testing.T) {
	stub := &stubCompletion{}
	orch := orchestrator.New(stub)
	sess := newTestSession("conv-1")

	const turns = 16
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := orch.RunTurn(context.Background(), sess, orchestrator.SingleMessage("checking in")); err != nil {
				t.Errorf("RunTurn failed: %v", err)
			}
		}()
	}
	wg.Wait()

	// No lost updates: every turn contributed exactly one user and one
	// assistant turn.
	want := 1 + turns*2
	if sess.Len() != want {
		t.Fatalf("transcript length = %d, want %d", sess.Len(), want)
	}
}

func TestRunTurnDistinctSessionsDoNotInterleave(t *testing.T) {
	stub := &stubCompletion{}
	orch := orchestrator.New(stub)

	a := newTestSession("conv-a")
	b := newTestSession("conv-b")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := orch.RunTurn(context.Background(), a, orchestrator.SingleMessage("for a")); err != nil {
				t.Errorf("RunTurn(a) failed: %v", err)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := orch.RunTurn(context.Background(), b, orchestrator.SingleMessage("for b")); err != nil {
				t.Errorf("RunTurn(b) failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if a.Len() != 1+8*2 || b.Len() != 1+8*2 {
		t.Fatalf("transcript lengths = %d, %d; want %d each", a.Len(), b.Len(), 1+8*2)
	}

	for _, turn := range a.Transcript()[1:] {
		if turn.Speaker == domain.SpeakerUser && turn.Text != "for a" {
			t.Fatalf("session a transcript contains foreign turn %q", turn.Text)
		}
	}
}
