package scanner

// Cursor is a forward-only view over a Result's non-blank lines, handed to
// the decoder's recursive descent. It never looks backwards and never
// mutates the underlying slice, matching spec.md §4.5's "cursor
// abstraction" (peek/next/current/advance/at_end) and §5's requirement
// that decode hold no cross-call state: a Cursor is created fresh for
// every Decode call and discarded afterwards.
type Cursor struct {
	lines []ParsedLine
	pos   int
}

// NewCursor wraps lines in a Cursor positioned before the first line.
func NewCursor(lines []ParsedLine) *Cursor {
	return &Cursor{lines: lines}
}

// AtEnd reports whether there are no more lines to read.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.lines) }

// Peek returns the next line without advancing, or (zero, false) at end.
func (c *Cursor) Peek() (ParsedLine, bool) {
	if c.AtEnd() {
		return ParsedLine{}, false
	}
	return c.lines[c.pos], true
}

// PeekAt returns the line offset positions ahead of the cursor, or
// (zero, false) if that position does not exist.
func (c *Cursor) PeekAt(offset int) (ParsedLine, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.lines) {
		return ParsedLine{}, false
	}
	return c.lines[i], true
}

// Current returns the last line returned by Next, or (zero, false) if Next
// has not yet been called.
func (c *Cursor) Current() (ParsedLine, bool) {
	if c.pos == 0 || c.pos-1 >= len(c.lines) {
		return ParsedLine{}, false
	}
	return c.lines[c.pos-1], true
}

// Next returns the next line and advances the cursor past it.
func (c *Cursor) Next() (ParsedLine, bool) {
	line, ok := c.Peek()
	if ok {
		c.pos++
	}
	return line, ok
}

// Advance moves the cursor forward by one line without returning it.
func (c *Cursor) Advance() { c.pos++ }

// Pos returns the current zero-based index into the line slice, useful for
// validators that need to re-scan a range after the fact.
func (c *Cursor) Pos() int { return c.pos }

// LineAt returns the raw ParsedLine slice index i, for validators.
func (c *Cursor) LineAt(i int) (ParsedLine, bool) {
	if i < 0 || i >= len(c.lines) {
		return ParsedLine{}, false
	}
	return c.lines[i], true
}
