package fix

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// defaultDiffContext is the number of context lines in unified diffs.
const defaultDiffContext = 3

// GenerateDiff produces a unified diff between the original and modified
// content of a file, for dry-run review. Returns the empty string when the
// contents are identical.
func GenerateDiff(path string, original, modified []byte) (string, error) {
	if string(original) == string(modified) {
		return "", nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(modified)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  defaultDiffContext,
	}

	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("generate diff for %s: %w", path, err)
	}
	return text, nil
}
