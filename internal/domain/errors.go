package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so the HTTP boundary can map it to a
// status code without inspecting message strings.
type ErrorKind string

const (
	// KindValidation: malformed or missing request fields. 400-class.
	KindValidation ErrorKind = "validation"
	// KindNotFound: a referenced audio resource is absent. 400-class.
	KindNotFound ErrorKind = "not_found"
	// KindService: a downstream collaborator (transcription, synthesis)
	// failed. 500-class.
	KindService ErrorKind = "service"
	// KindCompletion: the LLM adapter failed. 500-class.
	KindCompletion ErrorKind = "completion"
	// KindInvalidTurn: empty text pushed into session state. Defensive;
	// should never reach the boundary.
	KindInvalidTurn ErrorKind = "invalid_turn"
	// KindConfig: malformed externalized configuration. Fails fast at
	// startup.
	KindConfig ErrorKind = "config"
)

// Error carries a kind plus a human-readable cause. It wraps the
// underlying error, if any, for errors.Is/As chains.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a typed error without a wrapped cause.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError builds a typed error around an underlying cause.
func WrapError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors
// report as KindService so the boundary still answers with a 500.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindService
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}
