package printer

import "github.com/fatih/color"

// TokenClass classifies a lexer token for syntax highlighting purposes.
type TokenClass int

const (
	ClassPlain TokenClass = iota
	ClassKey
	ClassString
	ClassNumber
	ClassBool
	ClassNull
	ClassStructural
)

// Highlighter assigns an SGR color to each TokenClass. The zero value
// highlights nothing (every class renders as ClassPlain would).
type Highlighter struct {
	Key        *Property
	String     *Property
	Number     *Property
	Bool       *Property
	Structural *Property
}

// Property is a prefix/suffix pair of escape sequences wrapped around a
// token's text, matching the teacher's printer.Property shape.
type Property struct {
	Prefix string
	Suffix string
}

// DefaultHighlighter returns the color scheme cmd/tooncat uses by default,
// matching teacher's setDefaultColorSet palette so a TOON dump and a YAML
// dump from the teacher's ycat tool read the same way.
func DefaultHighlighter() *Highlighter {
	reset := format(color.Reset)
	return &Highlighter{
		Key:        &Property{Prefix: format(color.FgHiCyan), Suffix: reset},
		String:     &Property{Prefix: format(color.FgHiGreen), Suffix: reset},
		Number:     &Property{Prefix: format(color.FgHiMagenta), Suffix: reset},
		Bool:       &Property{Prefix: format(color.FgHiMagenta), Suffix: reset},
		Structural: &Property{Prefix: format(color.FgHiBlack), Suffix: reset},
	}
}

// Paint wraps text in the escape sequence for class, or returns text
// unchanged if h is nil or has no Property registered for class.
func (h *Highlighter) Paint(class TokenClass, text string) string {
	if h == nil {
		return text
	}
	var p *Property
	switch class {
	case ClassKey:
		p = h.Key
	case ClassString:
		p = h.String
	case ClassNumber:
		p = h.Number
	case ClassBool, ClassNull:
		p = h.Bool
	case ClassStructural:
		p = h.Structural
	}
	if p == nil {
		return text
	}
	return p.Prefix + text + p.Suffix
}
