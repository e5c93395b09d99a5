package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/lint"
	"github.com/yaklabco/javalint/pkg/runner"
)

func outcome(path string, suppressed int, diags ...lint.Diagnostic) runner.FileOutcome {
	return runner.FileOutcome{
		Path: path,
		Result: &lint.PipelineResult{
			Path: path,
			FileResult: &lint.FileResult{
				Path:        path,
				Diagnostics: diags,
				Suppressed:  suppressed,
			},
		},
	}
}

func diag(code, path string, line int, f *fix.Fix) lint.Diagnostic {
	return lint.Diagnostic{
		Code:        code,
		Rule:        code,
		Message:     "message for " + code,
		FilePath:    path,
		StartLine:   line,
		StartColumn: 1,
		EndLine:     line,
		EndColumn:   2,
		Fix:         f,
	}
}

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	report := Analyze(&runner.Result{}, DefaultOptions())
	require.NotNil(t, report)

	assert.Equal(t, ReportVersion, report.Version)
	assert.Zero(t, report.Totals.Issues)
	assert.Empty(t, report.ByRule)
	assert.Empty(t, report.ByFile)
}

func TestAnalyze_NilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())
	require.NotNil(t, report)
	assert.Zero(t, report.Totals.Files)
}

func TestAnalyze_Totals(t *testing.T) {
	t.Parallel()

	fixable := fix.SafeEdit(fix.Replacement(0, 1, "L"))
	result := &runner.Result{
		Files: []runner.FileOutcome{
			outcome("A.java", 1,
				diag("UpperEll", "A.java", 3, fixable),
				diag("LineLength", "A.java", 5, nil),
			),
			outcome("B.java", 0,
				diag("UpperEll", "B.java", 2, fixable),
			),
			outcome("C.java", 0),
		},
	}

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 3, report.Totals.Files)
	assert.Equal(t, 2, report.Totals.FilesWithIssues)
	assert.Equal(t, 3, report.Totals.Issues)
	assert.Equal(t, 2, report.Totals.Fixable)
	assert.Equal(t, 1, report.Totals.Suppressed)
	assert.True(t, report.Totals.HasIssues())
}

func TestAnalyze_ByRule(t *testing.T) {
	t.Parallel()

	fixable := fix.SafeEdit(fix.Replacement(0, 1, "L"))
	result := &runner.Result{
		Files: []runner.FileOutcome{
			outcome("A.java", 0,
				diag("UpperEll", "A.java", 1, fixable),
				diag("UpperEll", "A.java", 2, fixable),
				diag("LineLength", "A.java", 3, nil),
			),
			outcome("B.java", 0,
				diag("UpperEll", "B.java", 1, fixable),
			),
		},
	}

	report := Analyze(result, DefaultOptions())
	require.Len(t, report.ByRule, 2)

	// Count-descending: UpperEll (3) before LineLength (1).
	assert.Equal(t, "UpperEll", report.ByRule[0].Code)
	assert.Equal(t, 3, report.ByRule[0].Issues)
	assert.True(t, report.ByRule[0].Fixable)
	assert.Equal(t, []string{"A.java", "B.java"}, report.ByRule[0].Files)

	assert.Equal(t, "LineLength", report.ByRule[1].Code)
	assert.False(t, report.ByRule[1].Fixable)
}

func TestAnalyze_ByFile(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			outcome("A.java", 0, diag("LineLength", "A.java", 1, nil)),
			outcome("B.java", 0,
				diag("LineLength", "B.java", 1, nil),
				diag("UpperEll", "B.java", 2, nil),
			),
			outcome("Clean.java", 0),
		},
	}

	report := Analyze(result, DefaultOptions())
	require.Len(t, report.ByFile, 2)

	// Count-descending: B.java (2) before A.java (1); clean files omitted.
	assert.Equal(t, "B.java", report.ByFile[0].Path)
	assert.Equal(t, 2, report.ByFile[0].Issues)
	assert.Equal(t, []string{"LineLength", "UpperEll"}, report.ByFile[0].Rules)
	assert.Equal(t, "A.java", report.ByFile[1].Path)
}

func TestAnalyze_AlphaSort(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			outcome("Z.java", 0, diag("UpperEll", "Z.java", 1, nil)),
			outcome("A.java", 0,
				diag("LineLength", "A.java", 1, nil),
				diag("LineLength", "A.java", 2, nil),
			),
		},
	}

	opts := DefaultOptions()
	opts.SortBy = SortByAlpha

	report := Analyze(result, opts)

	assert.Equal(t, "LineLength", report.ByRule[0].Code)
	assert.Equal(t, "A.java", report.ByFile[0].Path)
}

func TestAnalyze_RelativePaths(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			outcome("/work/src/A.java", 0, diag("UpperEll", "/work/src/A.java", 1, nil)),
		},
	}

	opts := DefaultOptions()
	opts.WorkingDir = "/work"

	report := Analyze(result, opts)
	require.Len(t, report.ByFile, 1)
	assert.Equal(t, "src/A.java", report.ByFile[0].Path)
}

func TestAnalyze_DiagnosticEntries(t *testing.T) {
	t.Parallel()

	f := fix.SafeEdit(fix.Replacement(10, 11, "L"))
	result := &runner.Result{
		Files: []runner.FileOutcome{
			outcome("A.java", 0, diag("UpperEll", "A.java", 3, f)),
		},
	}

	report := Analyze(result, DefaultOptions())
	require.Len(t, report.Diagnostics, 1)

	entry := report.Diagnostics[0]
	assert.Equal(t, "UpperEll", entry.Code)
	assert.Equal(t, 3, entry.StartLine)
	assert.True(t, entry.Fixable)
	require.Len(t, entry.Fixes, 1)
	assert.Equal(t, 10, entry.Fixes[0].StartOffset)
	assert.Equal(t, "L", entry.Fixes[0].NewText)
}

func TestAnalyze_ExcludeDiagnostics(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			outcome("A.java", 0, diag("UpperEll", "A.java", 1, nil)),
		},
	}

	opts := DefaultOptions()
	opts.IncludeDiagnostics = false

	report := Analyze(result, opts)
	assert.Empty(t, report.Diagnostics)
	assert.Equal(t, 1, report.Totals.Issues)
}
