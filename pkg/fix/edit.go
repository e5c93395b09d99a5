// Package fix provides text edit types, fix planning, and application
// logic for auto-fixing.
package fix

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// IsInsertion returns true if the edit inserts text without removing any.
func (e TextEdit) IsInsertion() bool {
	return e.StartOffset == e.EndOffset && e.NewText != ""
}

// IsDeletion returns true if the edit removes text without adding any.
func (e TextEdit) IsDeletion() bool {
	return e.StartOffset < e.EndOffset && e.NewText == ""
}

// Replacement creates an edit replacing bytes [start, end) with newText.
func Replacement(start, end int, newText string) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end, NewText: newText}
}

// Insertion creates an edit inserting text at the given offset.
func Insertion(offset int, text string) TextEdit {
	return TextEdit{StartOffset: offset, EndOffset: offset, NewText: text}
}

// Deletion creates an edit deleting bytes [start, end).
func Deletion(start, end int) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end}
}
