package planner

import (
	"errors"
	"fmt"
)

// Kind tags every error the planner surfaces. The set is closed: callers
// switch on it to choose a response, and nothing else ever crosses the
// operation boundary. Every lookup failure and invariant violation is
// detected before any write, so a returned error always means the stores
// are unchanged.
type Kind string

const (
	// KindError covers conditions without a dedicated kind: duplicate
	// natural keys and missing nested records.
	KindError               Kind = "ERROR"
	KindInvalidInput        Kind = "INVALID_INPUT"
	KindVendorNotFound      Kind = "VENDOR_NOT_FOUND"
	KindWeddingNotFound     Kind = "WEDDING_NOT_FOUND"
	KindNoTimelineItems     Kind = "NO_TIMELINE_ITEMS_FOUND"
	KindDateUnavailable     Kind = "DATE_UNAVAILABLE"
	KindUnauthorizedAction  Kind = "UNAUTHORIZED_ACTION"
	KindBudgetExceeded      Kind = "BUDGET_EXCEEDED"
	// KindInvalidDate is declared for taxonomy completeness; no operation
	// currently returns it.
	KindInvalidDate Kind = "INVALID_DATE"
)

// Error is a tagged error value carrying a human-readable detail string.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Detail) }

// Errorf builds a tagged error with a formatted detail string.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// AsError reports whether err is a tagged planner error. Untagged errors
// are infrastructure failures and should surface as internal errors.
func AsError(err error) (*Error, bool) {
	var pe *Error
	ok := errors.As(err, &pe)
	return pe, ok
}

// KindOf extracts the kind from err, or KindError for foreign errors.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindError
}

// DetailOf extracts the detail string from err, falling back to Error().
func DetailOf(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Detail
	}
	return err.Error()
}
