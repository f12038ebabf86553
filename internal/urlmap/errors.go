package urlmap

import (
	"errors"
	"fmt"
)

var (
	// ErrNamespaceNotFound reports a namespace absent from the table.
	ErrNamespaceNotFound = errors.New("namespace not found")

	// ErrDuplicateNamespace reports a namespace defined more than once.
	ErrDuplicateNamespace = errors.New("duplicate namespace")

	// ErrInvalidEntry reports a malformed row or base URL.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrInvalidPath reports a page path that cannot be appended to a base URL.
	ErrInvalidPath = errors.New("invalid page path")
)

// EntryError describes why a row of a map was rejected.
type EntryError struct {
	Source    string // Table or file the row belongs to, if known
	Row       int    // Zero-based row index within Source
	Namespace string // Namespace of the row, if it had one
	Reason    string // Human-readable detail
	Err       error  // ErrInvalidEntry or ErrDuplicateNamespace
}

// Error implements the error interface
func (e *EntryError) Error() string {
	msg := fmt.Sprintf("entry %d", e.Row)
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	if e.Namespace != "" {
		msg += fmt.Sprintf(" (%q)", e.Namespace)
	}
	msg += ": " + e.Err.Error()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns the sentinel error so callers can use errors.Is
func (e *EntryError) Unwrap() error {
	return e.Err
}
