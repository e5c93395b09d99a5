package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/lint"
)

func plainStyles() *Styles {
	return NewStyles(false)
}

func TestFormatDiagnostic_Basic(t *testing.T) {
	t.Parallel()

	diag := &lint.Diagnostic{
		Code:        "UpperEll",
		Rule:        "UpperEll",
		Message:     "Should use uppercase 'L'.",
		FilePath:    "src/Main.java",
		StartLine:   3,
		StartColumn: 18,
	}

	out := plainStyles().FormatDiagnostic(diag, false, "")

	assert.Contains(t, out, "src/Main.java:3:18")
	assert.Contains(t, out, "Should use uppercase 'L'.")
	assert.Contains(t, out, "(UpperEll)")
	assert.NotContains(t, out, "[fixable]")
}

func TestFormatDiagnostic_FixableMarker(t *testing.T) {
	t.Parallel()

	diag := &lint.Diagnostic{
		Code:        "UpperEll",
		Message:     "Should use uppercase 'L'.",
		FilePath:    "Main.java",
		StartLine:   1,
		StartColumn: 1,
		Fix:         fix.SafeEdit(fix.Replacement(0, 1, "L")),
	}

	out := plainStyles().FormatDiagnostic(diag, false, "")
	assert.Contains(t, out, "[fixable]")
}

func TestFormatDiagnostic_RuleNameFallsBackToCode(t *testing.T) {
	t.Parallel()

	diag := &lint.Diagnostic{
		Code:        "EmptyBlock",
		Message:     "Must have at least one statement in if block.",
		FilePath:    "Main.java",
		StartLine:   2,
		StartColumn: 5,
	}

	out := plainStyles().FormatDiagnostic(diag, false, "")
	assert.Contains(t, out, "(EmptyBlock)")
}

func TestFormatDiagnostic_WithContext(t *testing.T) {
	t.Parallel()

	diag := &lint.Diagnostic{
		Code:        "UpperEll",
		Message:     "Should use uppercase 'L'.",
		FilePath:    "Main.java",
		StartLine:   1,
		StartColumn: 5,
	}

	out := plainStyles().FormatDiagnostic(diag, true, "long x = 10l;")

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4) // diagnostic, source, caret, trailing empty

	assert.Contains(t, lines[1], "long x = 10l;")
	caret := strings.Index(lines[2], "^")
	source := strings.Index(lines[1], "long")
	assert.Equal(t, source+4, caret) // column 5 within the source line
}

func TestFormatSourceContext_NoCaretAtColumnZero(t *testing.T) {
	t.Parallel()

	out := plainStyles().FormatSourceContext("int x;", 0)
	assert.NotContains(t, out, "^")
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := plainStyles()

	assert.Equal(t, "Main.java (2 issues)", styles.FormatFileHeader("Main.java", 2))
	assert.Equal(t, "Main.java (1 issue)", styles.FormatFileHeader("Main.java", 1))
	assert.Equal(t, "Main.java", styles.FormatFileHeader("Main.java", 0))
}
