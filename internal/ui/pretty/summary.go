package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/javalint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues in 3 files, 6 fixable, 2 suppressed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 {
		msg := s.Success.Render("No issues found") + s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		// Show fixes applied even when no issues remain
		if stats.FixesApplied > 0 {
			fileWord := wordFiles
			if stats.FilesModified == 1 {
				fileWord = wordFile
			}
			msg += ", " + s.Success.Render(fmt.Sprintf("%d fixed in %d %s", stats.FixesApplied, stats.FilesModified, fileWord))
		}
		return msg + "\n"
	}

	var parts []string

	issueWord := "issues"
	if stats.DiagnosticsTotal == 1 {
		issueWord = "issue"
	}
	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("%d %s in %d %s",
		stats.DiagnosticsTotal, issueWord, stats.FilesWithIssues, fileWord))

	if stats.DiagnosticsFixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.DiagnosticsFixable)))
	}

	if stats.DiagnosticsSuppressed > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d suppressed", stats.DiagnosticsSuppressed)))
	}

	if stats.FixesApplied > 0 {
		fixedFileWord := wordFiles
		if stats.FilesModified == 1 {
			fixedFileWord = wordFile
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixed in %d %s", stats.FixesApplied, stats.FilesModified, fixedFileWord)))
	}

	if stats.FilesUnconverged > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d not converged", stats.FilesUnconverged)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesModified > 0 {
		builder.WriteString("  Files modified:    " +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}

	if stats.ParseFailures > 0 {
		builder.WriteString("  Parse failures:    " +
			s.Warning.Render(strconv.Itoa(stats.ParseFailures)) + "\n")
	}

	builder.WriteString("\n")

	// Diagnostics
	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)) + "\n")

	if stats.DiagnosticsFixable > 0 {
		builder.WriteString("    Fixable:         " +
			s.Success.Render(strconv.Itoa(stats.DiagnosticsFixable)) + "\n")
	}
	if stats.DiagnosticsSuppressed > 0 {
		builder.WriteString("    Suppressed:      " +
			s.Dim.Render(strconv.Itoa(stats.DiagnosticsSuppressed)) + "\n")
	}
	if stats.FixesApplied > 0 {
		builder.WriteString("    Fixed:           " +
			s.Success.Render(strconv.Itoa(stats.FixesApplied)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.DiagnosticsTotal > 0:
		builder.WriteString(s.Failure.Render("Lint failed"))
	case stats.FilesUnconverged > 0:
		builder.WriteString(s.Warning.Render("Lint completed, some fixes did not converge"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
