package domain

// Turn is one message attributed to a speaker within a conversation.
// Immutable once created.
type Turn struct {
	Speaker Speaker
	Text    string
}

// OrchestrationResult is the value produced by one orchestration call.
// Owned by the caller; a fresh one is built per call.
type OrchestrationResult struct {
	IntroText      string
	SafetyWarnings []string
	SolutionText   string
}
