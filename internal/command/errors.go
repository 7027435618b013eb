package command

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/scanner"
)

// ErrInvalidArgument is returned when the arguments of a command call are malformed.
var ErrInvalidArgument = errors.New("invalid argument")

// A LabeledError points at the part of the source that caused the error.
type LabeledError struct {
	Kind    error
	Message string
	Label   string
	Span    scanner.Span
}

func (e *LabeledError) Error() string {
	return fmt.Sprintf("%s (%s at line %d, char %d)", e.Message, e.Label, e.Span.Start.Line+1, e.Span.Start.Char+1)
}

func (e *LabeledError) Unwrap() error {
	return e.Kind
}

// InvalidArgument returns a labeled ErrInvalidArgument error.
func InvalidArgument(msg, label string, span scanner.Span) error {
	return errors.WithStack(&LabeledError{
		Kind:    ErrInvalidArgument,
		Message: msg,
		Label:   label,
		Span:    span,
	})
}
