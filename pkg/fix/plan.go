package fix

import "sort"

// Plan is the conflict-resolved edit set for one fix pass.
type Plan struct {
	// Edits are the accepted edits: sorted by start offset, non-overlapping,
	// ready for ApplyEdits.
	Edits []TextEdit

	// Skipped contains edits rejected because they overlapped an accepted
	// edit. Their fixes get another chance on the next pass.
	Skipped []TextEdit

	// AppliedFixes counts fixes whose edits were all accepted.
	AppliedFixes int

	// PartialFixes counts fixes that had some edits accepted and some
	// skipped.
	PartialFixes int

	// SkippedFixes counts fixes that had no edits accepted.
	SkippedFixes int
}

// HasEdits returns true if the plan accepted at least one edit.
func (p *Plan) HasEdits() bool {
	return p != nil && len(p.Edits) > 0
}

// HasConflicts returns true if any edits were skipped.
func (p *Plan) HasConflicts() bool {
	return p != nil && len(p.Skipped) > 0
}

// taggedEdit pairs an edit with the ordinal of the fix it came from.
type taggedEdit struct {
	TextEdit
	fix int
}

// BuildPlan resolves a collection of fixes into a single non-overlapping
// edit set.
//
// All edits are pooled and stable-sorted by start offset; ties keep the
// order the fixes were supplied in, so earlier diagnostics win contested
// positions. Edits are then accepted greedily: an edit is taken iff it
// starts at or after the end of the last accepted edit. The result is
// deterministic for a given fix order.
//
// Conflicts are a policy outcome, not an error; the only error case is an
// edit with an invalid range for the given content length.
func BuildPlan(fixes []*Fix, contentLen int) (*Plan, error) {
	plan := &Plan{}

	var pool []taggedEdit
	for i, f := range fixes {
		if f == nil {
			continue
		}
		if err := ValidateEdits(f.Edits, contentLen); err != nil {
			return nil, err
		}
		for _, e := range f.Edits {
			pool = append(pool, taggedEdit{TextEdit: e, fix: i})
		}
	}

	if len(pool) == 0 {
		return plan, nil
	}

	// Stable sort by start offset only: equal starts keep supply order.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].StartOffset < pool[j].StartOffset
	})

	accepted := make([]int, len(fixes))
	rejected := make([]int, len(fixes))

	lastAcceptedEnd := -1
	for _, te := range pool {
		if te.StartOffset >= lastAcceptedEnd {
			plan.Edits = append(plan.Edits, te.TextEdit)
			lastAcceptedEnd = te.EndOffset
			accepted[te.fix]++
		} else {
			plan.Skipped = append(plan.Skipped, te.TextEdit)
			rejected[te.fix]++
		}
	}

	for i, f := range fixes {
		if f == nil || len(f.Edits) == 0 {
			continue
		}
		switch {
		case rejected[i] == 0:
			plan.AppliedFixes++
		case accepted[i] == 0:
			plan.SkippedFixes++
		default:
			plan.PartialFixes++
		}
	}

	return plan, nil
}
