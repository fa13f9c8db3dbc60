// Package errors implements TOON's single error carrier (spec.md §4.13,
// §7): one Kind tag, a free-text message, optional line/column/source-line
// location, and an optional inner cause. It follows the teacher's
// (goccy-go-yaml) choice of golang.org/x/xerrors for stack-trace capture
// on %+v, simplified: there is no token linked-list to walk, only a single
// location.
package errors

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/toon-go/toon/printer"
)

// Kind tags the taxonomy of spec.md §7.
type Kind int

const (
	// Unknown is reserved for implementation faults.
	Unknown Kind = iota
	// Syntax: malformed token, unterminated quote, invalid escape,
	// missing colon after key, unexpected prefix.
	Syntax
	// Indentation: tab in indentation (strict), non-multiple indent
	// (strict).
	Indentation
	// Range: declared length vs actual count mismatch.
	Range
	// Validation: blank line inside array body (strict), extra item/row
	// after the declared count (strict), header/data delimiter mismatch.
	Validation
	// Delimiter: field or value containing the active delimiter without
	// being quoted.
	Delimiter
	// PathExpansion: type conflict during dotted-key expansion (strict).
	PathExpansion
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Indentation:
		return "Indentation"
	case Range:
		return "Range"
	case Validation:
		return "Validation"
	case Delimiter:
		return "Delimiter"
	case PathExpansion:
		return "PathExpansion"
	default:
		return "Unknown"
	}
}

// Error is the sole error type the decoder and encoder ever return.
type Error struct {
	Kind       Kind
	Message    string
	Line       int // 1-based; 0 means unknown
	Column     int // 1-based; 0 means unknown
	SourceLine string
	Depth      int
	cause      error
	frame      xerrors.Frame
}

// HasLocation reports whether Line/Column are populated.
func (e *Error) HasLocation() bool { return e.Line > 0 }

func (e *Error) Error() string {
	if e.HasLocation() {
		return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the inner cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// FormatError implements xerrors.Formatter so that fmt's %+v verb prints a
// stack frame in addition to the message, matching teacher's syntaxError.
func (e *Error) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	if p.Detail() {
		e.frame.Format(p)
	}
	return nil
}

// Format implements fmt.Formatter via xerrors' adaptor.
func (e *Error) Format(state fmt.State, verb rune) {
	xerrors.FormatError(e, state, verb)
}

// SourceExcerpt renders the offending line with a caret under the failing
// column, as spec.md §7 recommends ("Implementations SHOULD render a caret
// (^) under the failing column").
func (e *Error) SourceExcerpt(colored bool) string {
	if e.SourceLine == "" {
		return ""
	}
	return printer.Excerpt(e.SourceLine, e.Column, colored)
}

func newAt(kind Kind, msg string, line, column int, source string) *Error {
	return &Error{
		Kind:       kind,
		Message:    msg,
		Line:       line,
		Column:     column,
		SourceLine: source,
		frame:      xerrors.Caller(2),
	}
}

// ErrSyntax builds a Syntax error at the given location.
func ErrSyntax(msg string, line, column int, source string) *Error {
	return newAt(Syntax, msg, line, column, source)
}

// ErrIndentation builds an Indentation error at the given location.
func ErrIndentation(msg string, line, column int, source string) *Error {
	return newAt(Indentation, msg, line, column, source)
}

// ErrRange builds a Range error at the given location.
func ErrRange(msg string, line, column int, source string) *Error {
	return newAt(Range, msg, line, column, source)
}

// ErrValidation builds a Validation error at the given location.
func ErrValidation(msg string, line, column int, source string) *Error {
	return newAt(Validation, msg, line, column, source)
}

// ErrDelimiter builds a Delimiter error at the given location.
func ErrDelimiter(msg string, line, column int, source string) *Error {
	return newAt(Delimiter, msg, line, column, source)
}

// ErrPathExpansion builds a PathExpansion error. Path expansion runs after
// the line cursor is gone, so it carries no source location.
func ErrPathExpansion(msg string) *Error {
	return &Error{Kind: PathExpansion, Message: msg, frame: xerrors.Caller(1)}
}

// Wrap attaches err as the inner cause of a new Error of the given kind,
// matching teacher's errors.Wrapf role (stack-trace preserving wrap).
func Wrap(kind Kind, err error, msg string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(msg, args...),
		cause:   err,
		frame:   xerrors.Caller(1),
	}
}

// As reports whether err is (or wraps) a *Error, returning it if so.
func As(err error) (*Error, bool) {
	var e *Error
	if xerrors.As(err, &e) {
		return e, true
	}
	return nil, false
}
