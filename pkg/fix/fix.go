package fix

import "sort"

// Applicability classifies how safely a fix can be applied automatically.
type Applicability int

const (
	// ApplicabilitySafe marks fixes that preserve program behavior.
	// Safe fixes are applied by default in fix mode.
	ApplicabilitySafe Applicability = iota

	// ApplicabilityUnsafe marks fixes that may change behavior or lose
	// information. Unsafe fixes are applied only when explicitly enabled.
	ApplicabilityUnsafe
)

// String returns "safe" or "unsafe".
func (a Applicability) String() string {
	if a == ApplicabilityUnsafe {
		return "unsafe"
	}
	return "safe"
}

// Fix is one diagnostic's complete repair: one or more edits that must be
// understood together, though the planner may apply them partially when
// some edits conflict with another fix.
//
// Edits are kept sorted by start offset. Edits within a single Fix must
// not overlap each other; that is a programming error in the rule that
// built the fix, and Validate reports it.
type Fix struct {
	// Edits are the text changes, sorted by start offset.
	Edits []TextEdit

	// Applicability classifies the fix as safe or unsafe.
	Applicability Applicability
}

// SafeEdit creates a safe fix from a single edit.
func SafeEdit(edit TextEdit) *Fix {
	return &Fix{Edits: []TextEdit{edit}, Applicability: ApplicabilitySafe}
}

// SafeEdits creates a safe fix from multiple edits.
func SafeEdits(edits ...TextEdit) *Fix {
	return newFix(edits, ApplicabilitySafe)
}

// UnsafeEdit creates an unsafe fix from a single edit.
func UnsafeEdit(edit TextEdit) *Fix {
	return &Fix{Edits: []TextEdit{edit}, Applicability: ApplicabilityUnsafe}
}

// UnsafeEdits creates an unsafe fix from multiple edits.
func UnsafeEdits(edits ...TextEdit) *Fix {
	return newFix(edits, ApplicabilityUnsafe)
}

func newFix(edits []TextEdit, applicability Applicability) *Fix {
	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	SortEdits(sorted)
	return &Fix{Edits: sorted, Applicability: applicability}
}

// IsSafe returns true for safe fixes.
func (f *Fix) IsSafe() bool {
	return f != nil && f.Applicability == ApplicabilitySafe
}

// MinStart returns the smallest start offset across the fix's edits.
// Returns -1 for a fix with no edits.
func (f *Fix) MinStart() int {
	if f == nil || len(f.Edits) == 0 {
		return -1
	}
	return f.Edits[0].StartOffset
}

// SortEdits sorts edits by start offset, then by end offset.
// This produces a deterministic order for edit application.
func SortEdits(edits []TextEdit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}
