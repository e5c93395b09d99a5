package lint

import (
	"unicode"

	"github.com/yaklabco/javalint/pkg/javacst"
)

// Context provides per-file state to rules: the source text, the position
// index, and small text helpers. It is created once per lint pass and
// shared by every rule running over that file.
type Context struct {
	// Path is the file path being linted.
	Path string

	// Source is the raw file content.
	Source []byte

	// Lines maps byte offsets to line/column positions.
	Lines *javacst.LineIndex
}

// NewContext creates a Context for the given file content.
func NewContext(path string, source []byte) *Context {
	return &Context{
		Path:   path,
		Source: source,
		Lines:  javacst.NewLineIndex(source),
	}
}

// Slice returns the source text covered by a range.
func (c *Context) Slice(r javacst.Range) string {
	if r.StartOffset < 0 || r.EndOffset > len(c.Source) || r.StartOffset > r.EndOffset {
		return ""
	}
	return string(c.Source[r.StartOffset:r.EndOffset])
}

// Position returns the 1-based line/column for a byte offset.
func (c *Context) Position(offset int) javacst.Position {
	return c.Lines.At(offset)
}

// LineText returns the text of a 1-based line, without its newline.
func (c *Context) LineText(line int) string {
	return string(c.Source[c.Lines.LineStart(line):c.Lines.LineEnd(line)])
}

// ByteAt returns the byte at an offset, with ok=false out of bounds.
func (c *Context) ByteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= len(c.Source) {
		return 0, false
	}
	return c.Source[offset], true
}

// IsSpaceBefore reports whether the byte immediately before offset is a
// space or tab.
func (c *Context) IsSpaceBefore(offset int) bool {
	b, ok := c.ByteAt(offset - 1)
	return ok && (b == ' ' || b == '\t')
}

// IsWhitespaceAfter reports whether the byte at offset is whitespace or
// the offset is at end of file.
func (c *Context) IsWhitespaceAfter(offset int) bool {
	b, ok := c.ByteAt(offset)
	if !ok {
		return true
	}
	return unicode.IsSpace(rune(b))
}

// WhitespaceRunBefore returns the range of consecutive spaces and tabs
// ending just before offset. The range is empty when none precede it.
func (c *Context) WhitespaceRunBefore(offset int) javacst.Range {
	start := offset
	for start > 0 {
		b := c.Source[start-1]
		if b != ' ' && b != '\t' {
			break
		}
		start--
	}
	return javacst.Range{StartOffset: start, EndOffset: offset}
}

// WhitespaceRunAfter returns the range of consecutive spaces and tabs
// starting at offset. The range is empty when none follow it.
func (c *Context) WhitespaceRunAfter(offset int) javacst.Range {
	end := offset
	for end < len(c.Source) {
		b := c.Source[end]
		if b != ' ' && b != '\t' {
			break
		}
		end++
	}
	return javacst.Range{StartOffset: offset, EndOffset: end}
}
