package normalize

import (
	"errors"
	"fmt"
)

// ErrUnsupportedInput indicates the raw value is not a JSON-like object
var ErrUnsupportedInput = errors.New("unsupported input")

// ErrNoQuestionList indicates neither a "questions" nor an "answers" list was found
var ErrNoQuestionList = errors.New("no recognizable question list")

// ErrMissingIdentifier indicates an item has neither "id" nor "questionId"
var ErrMissingIdentifier = errors.New("item has no resolvable identifier")

// ErrMalformedItem indicates a list item is not an object
var ErrMalformedItem = errors.New("malformed item")

// ErrDuplicateQuestion indicates two question definitions share an identifier
var ErrDuplicateQuestion = errors.New("duplicate question identifier")

// Error is returned when a raw record matches none of the recognized shapes.
// It wraps one of the sentinel errors above.
type Error struct {
	Reason error
	Index  int    // Item index, -1 for record-level problems
	Field  string // Offending field, if any
}

func (e *Error) Error() string {
	msg := "normalize: " + e.Reason.Error()
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (item %d)", e.Index)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" [%s]", e.Field)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Reason
}

// IsNormalizationError reports whether err is a malformation rather than an I/O failure
func IsNormalizationError(err error) bool {
	var ne *Error
	return errors.As(err, &ne)
}

func recordError(reason error, field string) *Error {
	return &Error{Reason: reason, Index: -1, Field: field}
}

func itemError(reason error, index int, field string) *Error {
	return &Error{Reason: reason, Index: index, Field: field}
}
