package javacst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/javalint/pkg/javacst"
)

func TestLineIndexAt(t *testing.T) {
	t.Parallel()

	content := []byte("abc\ndef\n\nghi")
	ix := javacst.NewLineIndex(content)

	tests := []struct {
		name   string
		offset int
		line   int
		column int
	}{
		{name: "start of file", offset: 0, line: 1, column: 1},
		{name: "middle of first line", offset: 2, line: 1, column: 3},
		{name: "newline belongs to its line", offset: 3, line: 1, column: 4},
		{name: "start of second line", offset: 4, line: 2, column: 1},
		{name: "empty line", offset: 8, line: 3, column: 1},
		{name: "last line", offset: 9, line: 4, column: 1},
		{name: "end of file", offset: 12, line: 4, column: 4},
		{name: "past end clamps", offset: 100, line: 4, column: 4},
		{name: "negative clamps", offset: -5, line: 1, column: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := ix.At(tt.offset)
			assert.Equal(t, tt.line, pos.Line, "line")
			assert.Equal(t, tt.column, pos.Column, "column")
		})
	}
}

func TestLineIndexEmptyContent(t *testing.T) {
	t.Parallel()

	ix := javacst.NewLineIndex(nil)
	assert.Equal(t, 1, ix.LineCount())
	assert.Equal(t, javacst.Position{Line: 1, Column: 1}, ix.At(0))
}

func TestLineIndexTrailingNewline(t *testing.T) {
	t.Parallel()

	ix := javacst.NewLineIndex([]byte("a\n"))
	assert.Equal(t, 2, ix.LineCount())
	assert.Equal(t, 2, ix.At(2).Line)
}

func TestLineIndexLineBounds(t *testing.T) {
	t.Parallel()

	content := []byte("abc\ndefgh\nx")
	ix := javacst.NewLineIndex(content)

	assert.Equal(t, 0, ix.LineStart(1))
	assert.Equal(t, 3, ix.LineEnd(1))
	assert.Equal(t, 4, ix.LineStart(2))
	assert.Equal(t, 9, ix.LineEnd(2))
	assert.Equal(t, 10, ix.LineStart(3))
	assert.Equal(t, 11, ix.LineEnd(3))
}

func TestLineIndexLineRange(t *testing.T) {
	t.Parallel()

	content := []byte("abc\ndef\nghi")
	ix := javacst.NewLineIndex(content)

	// Interior lines include the trailing newline.
	assert.Equal(t, javacst.Range{StartOffset: 0, EndOffset: 4}, ix.LineRange(1))
	assert.Equal(t, javacst.Range{StartOffset: 4, EndOffset: 8}, ix.LineRange(2))
	// The final unterminated line runs to EOF.
	assert.Equal(t, javacst.Range{StartOffset: 8, EndOffset: 11}, ix.LineRange(3))
}

func TestRange(t *testing.T) {
	t.Parallel()

	r := javacst.Range{StartOffset: 2, EndOffset: 5}
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))

	empty := javacst.Range{StartOffset: 3, EndOffset: 3}
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.Contains(3))
}
