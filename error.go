package toon

import (
	"fmt"

	toonerrors "github.com/toon-go/toon/errors"
)

// Re-export the error Kind taxonomy at the package root so callers need
// not import toon/errors just to switch on err.Kind.
type (
	// Error is the single error type every encode/decode call returns.
	Error = toonerrors.Error
	// Kind tags the taxonomy of spec.md §7.
	Kind = toonerrors.Kind
)

const (
	KindSyntax        = toonerrors.Syntax
	KindIndentation   = toonerrors.Indentation
	KindRange         = toonerrors.Range
	KindValidation    = toonerrors.Validation
	KindDelimiter     = toonerrors.Delimiter
	KindPathExpansion = toonerrors.PathExpansion
	KindUnknown       = toonerrors.Unknown
)

// AsError reports whether err is (or wraps) a *Error, returning it if so.
func AsError(err error) (*Error, bool) {
	return toonerrors.As(err)
}

// FormatError renders err as a human-readable message. When withSource is
// true and err carries a source line, a caret is rendered under the
// failing column (spec.md §7); when colored is true the caret is
// ANSI-colorized via github.com/fatih/color.
func FormatError(err error, colored, withSource bool) string {
	if err == nil {
		return ""
	}
	e, ok := toonerrors.As(err)
	if !ok {
		return err.Error()
	}
	msg := e.Error()
	if withSource {
		if excerpt := e.SourceExcerpt(colored); excerpt != "" {
			return fmt.Sprintf("%s\n%s", msg, excerpt)
		}
	}
	return msg
}
