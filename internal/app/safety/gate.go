// Package safety implements the pre-send safety gate: a case-insensitive
// substring scan of user input against the configured trigger words.
package safety

import (
	"strings"

	"github.com/havenmind/haven-agent/internal/domain"
)

// Check scans utterance for any of the protocol's trigger words. On the
// first hit it returns the protocol's fixed response template and true.
// The match is existence-only: which word hit is not reported, and every
// trigger maps to the same template. Matching is substring-based, not
// word-boundary aware. A whitespace-only utterance is a no-op.
//
// Check has no side effects; the caller owns any transcript mutation.
func Check(utterance string, protocol domain.SafetyProtocol) (string, bool) {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return "", false
	}

	lowered := strings.ToLower(trimmed)
	for _, trigger := range protocol.TriggerWords {
		if trigger == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(trigger)) {
			return protocol.ResponseTemplate, true
		}
	}
	return "", false
}
