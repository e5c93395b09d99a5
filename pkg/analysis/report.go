// Package analysis aggregates lint results into renderable views.
package analysis

import "time"

// Report contains pre-computed views of lint results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Diagnostics is the flat list for detailed output.
	Diagnostics []DiagnosticEntry `json:"diagnostics,omitempty"`

	// ByFile groups diagnostics by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByRule groups diagnostics by check.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// DiagnosticEntry represents a single diagnostic in the report.
type DiagnosticEntry struct {
	FilePath    string     `json:"filePath"`
	Code        string     `json:"code"`
	Rule        string     `json:"rule"`
	Message     string     `json:"message"`
	StartLine   int        `json:"startLine"`
	StartColumn int        `json:"startColumn"`
	EndLine     int        `json:"endLine"`
	EndColumn   int        `json:"endColumn"`
	Fixable     bool       `json:"fixable"`
	FixTitle    string     `json:"fixTitle,omitempty"`
	Fixes       []FixEntry `json:"fixes,omitempty"`
}

// FixEntry represents a text edit fix.
type FixEntry struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	Issues          int `json:"totalIssues"`
	Fixable         int `json:"fixable"`
	Suppressed      int `json:"suppressed"`
	ParseFailures   int `json:"parseFailures"`
	FilesModified   int `json:"filesModified"`
	FixesApplied    int `json:"fixesApplied"`
}

// HasIssues returns true if there are any issues.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path       string   `json:"path"`
	Issues     int      `json:"issues"`
	Fixable    int      `json:"fixable"`
	Suppressed int      `json:"suppressed"`
	Rules      []string `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single check.
type RuleAnalysis struct {
	Code    string   `json:"code"`
	Rule    string   `json:"rule"`
	Issues  int      `json:"issues"`
	Fixable bool     `json:"fixable"`
	Files   []string `json:"files,omitempty"`
}
