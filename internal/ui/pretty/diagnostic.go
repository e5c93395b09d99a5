package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/javalint/pkg/lint"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, showContext bool, sourceLine string) string {
	var builder strings.Builder

	// Location: path:line:col
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(diag.FilePath),
		diag.StartLine,
		diag.StartColumn,
	)

	ruleDisplay := s.RuleID.Render("(" + ruleIdentifier(diag) + ")")

	// Main line: location  message  (check)  [fixable]
	builder.WriteString("  " + location + "  " + s.Message.Render(diag.Message) + "  " + ruleDisplay)
	if diag.HasFix() {
		builder.WriteString("  " + s.Fixable.Render("[fixable]"))
	}
	builder.WriteString("\n")

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.StartColumn))
	}

	return builder.String()
}

// ruleIdentifier returns the display name for the check behind a diagnostic.
// The configured module name wins over the derived code because that is the
// string users wrote in their config.
func ruleIdentifier(diag *lint.Diagnostic) string {
	if diag.Rule != "" {
		return diag.Rule
	}
	return diag.Code
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	// Source line
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	// Caret marker
	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		word := "issues"
		if issueCount == 1 {
			word = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, word))
	}
	return header
}
