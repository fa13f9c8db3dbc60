package toon

import "github.com/toon-go/toon/token"

// Unbounded marks flatten_depth as having no cap (spec.md §6 EncodeOptions
// default).
const Unbounded = -1

// EncodeOption configures an Encoder, mirroring the teacher's
// functional-option style (option.go) but resolving directly into the
// encodeOptions struct threaded through encoder.go instead of a handful of
// loose Encoder fields.
type EncodeOption func(e *Encoder)

// Indent sets the number of spaces per depth level (spec.md §6
// EncodeOptions "indent", default 2).
func Indent(spaces int) EncodeOption {
	return func(e *Encoder) { e.opts.indent = spaces }
}

// WithDelimiter sets the delimiter used for inline arrays and tabular rows
// (spec.md §6 EncodeOptions "delimiter", default Comma).
func WithDelimiter(d token.Delimiter) EncodeOption {
	return func(e *Encoder) { e.opts.delimiter = d }
}

// WithKeyFolding enables or disables key folding (spec.md §6 EncodeOptions
// "key_folding", default Off).
func WithKeyFolding(k KeyFolding) EncodeOption {
	return func(e *Encoder) { e.opts.keyFolding = k }
}

// WithFlattenDepth caps the number of segments a folded chain may collect;
// pass Unbounded for no cap (spec.md §6 EncodeOptions "flatten_depth",
// default unbounded).
func WithFlattenDepth(n int) EncodeOption {
	return func(e *Encoder) { e.opts.flattenDepth = n }
}

// PathExpansion selects whether Decode splits dotted keys into nested
// objects after decoding (spec.md §6 DecodeOptions "expand_paths").
type PathExpansion int

const (
	PathExpansionOff PathExpansion = iota
	PathExpansionSafe
)

// DecodeOption configures a Decoder.
type DecodeOption func(d *Decoder)

// DecodeIndent sets the expected number of spaces per depth level
// (spec.md §6 DecodeOptions "indent", default 2).
func DecodeIndent(spaces int) DecodeOption {
	return func(d *Decoder) { d.indent = spaces }
}

// Strict toggles count/width/indent/blank-line invariant enforcement
// (spec.md §6 DecodeOptions "strict", default true).
func Strict(strict bool) DecodeOption {
	return func(d *Decoder) { d.strict = strict }
}

// WithExpandPaths enables path expansion (spec.md §6 DecodeOptions
// "expand_paths", default Off).
func WithExpandPaths(p PathExpansion) DecodeOption {
	return func(d *Decoder) { d.expandPaths = p }
}
