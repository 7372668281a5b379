package validate

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewNotes = errors.New("too few notes")
	ErrWrongSaber  = errors.New("wrong saber type")
)

// RejectionError is a policy decision against an otherwise readable replay.
type RejectionError struct {
	Reason error
	Detail string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("replay rejected: %v: %s", e.Reason, e.Detail)
}

func (e *RejectionError) Unwrap() error {
	return e.Reason
}

func reject(reason error, format string, a ...any) error {
	return &RejectionError{Reason: reason, Detail: fmt.Sprintf(format, a...)}
}
