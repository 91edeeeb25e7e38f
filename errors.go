package cliargs

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"
)

type Reason int

const (
	MissingArgument Reason = iota + 1
	MissingOption
	InvalidArgument
	InvalidOption
)

func (r Reason) String() string {
	switch r {
	case MissingArgument:
		return "missing argument"
	case MissingOption:
		return "missing option"
	case InvalidArgument:
		return "invalid argument"
	case InvalidOption:
		return "invalid option"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Error is returned by the consume operations. Usage is the one attached to the Consumer, if
// any.
type Error struct {
	Reason Reason
	// The option name, for MissingOption and InvalidOption.
	Name string
	// The raw token that failed conversion.
	Value string
	// The Go type the value was being converted to.
	ExpectedType string
	Usage        *Usage

	cause error
}

var (
	_ error             = (*Error)(nil)
	_ xerrors.Formatter = (*Error)(nil)
)

func (e *Error) sentence() string {
	switch e.Reason {
	case MissingArgument:
		return "missing argument"
	case MissingOption:
		return fmt.Sprintf("missing option: %q", e.Name)
	case InvalidArgument:
		return fmt.Sprintf("invalid argument %q: expected %s", e.Value, e.ExpectedType)
	case InvalidOption:
		return fmt.Sprintf("invalid value %q for option %q: expected %s", e.Value, e.Name, e.ExpectedType)
	default:
		return e.Reason.String()
	}
}

// Message describes the failure without the usage text.
func (e *Error) Message() string {
	if e.cause != nil {
		return e.sentence() + ": " + e.cause.Error()
	}
	return e.sentence()
}

func (e *Error) Error() string {
	if e.Usage == nil {
		return e.Message()
	}
	return e.Message() + "\n\n" + e.Usage.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Cause() error {
	return e.cause
}

// FormatError prints the failure and, in detail mode, the attached usage. The conversion error
// follows as the next error in the chain.
func (e *Error) FormatError(p xerrors.Printer) (next error) {
	p.Print(e.sentence())
	if p.Detail() && e.Usage != nil {
		p.Printf("\n%s", e.Usage)
	}
	return e.cause
}

// ReasonOf returns the Reason of the first *Error in err's chain, or zero if there is none.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return 0
}

// IsMissing reports whether err is due to an expected argument or option being absent.
func IsMissing(err error) bool {
	switch ReasonOf(err) {
	case MissingArgument, MissingOption:
		return true
	}
	return false
}
