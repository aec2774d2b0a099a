package report

import (
	"errors"
	"fmt"
)

// Sentinel errors for common assembly failure conditions.
var (
	ErrNoTemplates       = errors.New("report: document has no page templates")
	ErrDuplicateTemplate = errors.New("report: page template id already registered")
	ErrUnknownTemplate   = errors.New("report: unknown page template id")
	ErrContentTooLarge   = errors.New("report: content does not fit the page frame")
	ErrEmptyImage        = errors.New("report: image has no data")
)

// Error represents a failure during a specific assembly operation.
// It wraps an underlying error and includes the operation name for context.
type Error struct {
	Op  string // operation name, e.g. "Build", "AddTemplate"
	Err error  // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("report.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("report.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates a new Error wrapping the given error with operation context.
func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}
