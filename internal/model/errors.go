package model

import "errors"

// Kind classifies a failed operation. Callers print the message and, for
// KindPreexisting only, branch on the kind to offer an overwrite.
type Kind int

const (
	KindParse Kind = iota + 1
	KindNotFound
	KindPreexisting
	KindMissingFile
	KindIO
)

// Sentinels for errors.Is matching against an *Error's kind.
var (
	ErrParse       = errors.New("parse error")
	ErrNotFound    = errors.New("not found")
	ErrPreexisting = errors.New("preexisting item")
	ErrMissingFile = errors.New("missing file")
	ErrIO          = errors.New("i/o error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindParse:
		return ErrParse
	case KindNotFound:
		return ErrNotFound
	case KindPreexisting:
		return ErrPreexisting
	case KindMissingFile:
		return ErrMissingFile
	case KindIO:
		return ErrIO
	}
	return nil
}

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown"
}

// Error is the failure half of every catalog and ledger operation.
// Msg is meant to be shown to the user verbatim.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// NewError returns an *Error of the given kind. cause may be nil.
func NewError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Kind.String()
	}
	if e.Kind == KindIO && e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
