package matching

import (
	"errors"
	"fmt"
)

// MatchErrorKind distinguishes the failure classes callers react to
// differently. "No matches" is not an error at all; it is a normal
// RankingResult with an empty list and market insights.
type MatchErrorKind string

const (
	ErrKindInvalidOrder   MatchErrorKind = "invalid_order"
	ErrKindInvalidOptions MatchErrorKind = "invalid_options"
	ErrKindInternal       MatchErrorKind = "internal"
)

// MatchError is the typed error returned at the engine boundary.
type MatchError struct {
	Kind    MatchErrorKind
	Message string
	Err     error
}

func (e *MatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err is a validation failure (bad order or
// bad options) rather than an internal fault.
func IsInvalidInput(err error) bool {
	var me *MatchError
	if errors.As(err, &me) {
		return me.Kind == ErrKindInvalidOrder || me.Kind == ErrKindInvalidOptions
	}
	return false
}
