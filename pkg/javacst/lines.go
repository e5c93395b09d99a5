// Package javacst provides Java concrete syntax tree parsing and traversal
// for javalint. It wraps tree-sitter with value types that carry the source
// text alongside each node, plus a byte-offset to line/column index.
package javacst

import "sort"

// Position represents a 1-based line and column in a file.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// LineIndex maps byte offsets to line/column positions.
// It is built once per file and supports O(log n) lookups.
type LineIndex struct {
	// starts holds the byte offset of the first byte of each line.
	// Line 1 always starts at offset 0.
	starts []int

	// size is the total length of the indexed content in bytes.
	size int
}

// NewLineIndex builds a LineIndex for the given content.
// A new line begins after each '\n'; the final line may be unterminated.
func NewLineIndex(content []byte) *LineIndex {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, size: len(content)}
}

// LineCount returns the number of lines in the indexed content.
// Empty content has one (empty) line.
func (ix *LineIndex) LineCount() int {
	return len(ix.starts)
}

// Size returns the total length of the indexed content in bytes.
func (ix *LineIndex) Size() int {
	return ix.size
}

// At returns the 1-based line and column for a byte offset.
// Column is a 1-based byte count from the line start.
// Offsets beyond the content clamp to the final position.
func (ix *LineIndex) At(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > ix.size {
		offset = ix.size
	}

	// Find the last line start <= offset.
	line := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})

	return Position{
		Line:   line,
		Column: offset - ix.starts[line-1] + 1,
	}
}

// LineOf returns the 1-based line number containing the byte offset.
func (ix *LineIndex) LineOf(offset int) int {
	return ix.At(offset).Line
}

// LineStart returns the byte offset of the first byte of the given
// 1-based line. Out-of-range lines clamp to the nearest valid line.
func (ix *LineIndex) LineStart(line int) int {
	if line < 1 {
		line = 1
	}
	if line > len(ix.starts) {
		line = len(ix.starts)
	}
	return ix.starts[line-1]
}

// LineEnd returns the byte offset one past the last byte of the given
// 1-based line, excluding the trailing '\n' if present.
func (ix *LineIndex) LineEnd(line int) int {
	if line < 1 {
		line = 1
	}
	if line >= len(ix.starts) {
		return ix.size
	}
	end := ix.starts[line] - 1
	if end < ix.starts[line-1] {
		end = ix.starts[line-1]
	}
	return end
}

// LineRange returns the byte range covering the given 1-based line,
// including the trailing '\n' if present. Deleting this range removes
// the entire line.
func (ix *LineIndex) LineRange(line int) Range {
	if line < 1 {
		line = 1
	}
	if line >= len(ix.starts) {
		return Range{StartOffset: ix.starts[len(ix.starts)-1], EndOffset: ix.size}
	}
	return Range{StartOffset: ix.starts[line-1], EndOffset: ix.starts[line]}
}
