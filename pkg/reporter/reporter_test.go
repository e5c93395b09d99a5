package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/lint"
	"github.com/yaklabco/javalint/pkg/runner"
)

func testOutcome(path string, diags ...lint.Diagnostic) runner.FileOutcome {
	return runner.FileOutcome{
		Path: path,
		Result: &lint.PipelineResult{
			Path:      path,
			Converged: true,
			FileResult: &lint.FileResult{
				Path:        path,
				Diagnostics: diags,
			},
		},
	}
}

func testDiag(code, path string, line, col int) lint.Diagnostic {
	return lint.Diagnostic{
		Code:        code,
		Rule:        code,
		Message:     "message for " + code,
		FilePath:    path,
		StartLine:   line,
		StartColumn: col,
		EndLine:     line,
		EndColumn:   col + 1,
	}
}

func testResult(files ...runner.FileOutcome) *runner.Result {
	result := &runner.Result{Files: files}
	for _, f := range files {
		result.Stats.FilesProcessed++
		if f.Result == nil || f.Result.FileResult == nil {
			continue
		}
		n := len(f.Result.Diagnostics)
		result.Stats.DiagnosticsTotal += n
		if n > 0 {
			result.Stats.FilesWithIssues++
		}
	}
	return result
}

func noColorOptions(buf *bytes.Buffer) Options {
	opts := DefaultOptions()
	opts.Writer = buf
	opts.Color = "never"
	return opts
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatText, FormatJSON, FormatDiff, FormatSummary} {
		opts := noColorOptions(&bytes.Buffer{})
		opts.Format = format

		rep, err := New(opts)
		require.NoError(t, err, "format %s", format)
		assert.NotNil(t, rep)
	}
}

func TestNew_EmptyFormatDefaultsToText(t *testing.T) {
	t.Parallel()

	opts := noColorOptions(&bytes.Buffer{})
	opts.Format = ""

	rep, err := New(opts)
	require.NoError(t, err)
	assert.IsType(t, &TextReporter{}, rep)
}

func TestNew_InvalidFormat(t *testing.T) {
	t.Parallel()

	opts := noColorOptions(&bytes.Buffer{})
	opts.Format = Format("sarif")

	_, err := New(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	format, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	_, err = ParseFormat("table")
	require.Error(t, err)
}

func TestTextReporter_Grouped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := noColorOptions(&buf)
	opts.ShowContext = false
	rep := NewTextReporter(opts)

	result := testResult(
		testOutcome("A.java",
			testDiag("UpperEll", "A.java", 3, 18),
			testDiag("LineLength", "A.java", 5, 81),
		),
		testOutcome("B.java"),
	)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "A.java (2 issues)")
	assert.Contains(t, out, "A.java:3:18")
	assert.Contains(t, out, "(UpperEll)")
	assert.Contains(t, out, "2 issues in 1 file")
	// Clean files get no header.
	assert.NotContains(t, out, "B.java (")
}

func TestTextReporter_FileError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewTextReporter(noColorOptions(&buf))

	result := testResult(runner.FileOutcome{
		Path:  "Missing.java",
		Error: errors.New("file not found"),
	})

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Missing.java: error: file not found")
}

func TestTextReporter_NoFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewTextReporter(noColorOptions(&buf))

	count, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Contains(t, buf.String(), "No files to check.")
}

func TestTextReporter_ContextFromModifiedContent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := noColorOptions(&buf)
	rep := NewTextReporter(opts)

	outcome := testOutcome("A.java", testDiag("UpperEll", "A.java", 2, 5))
	outcome.Result.ModifiedContent = []byte("class A {\nlong x = 10l;\n}\n")

	_, err := rep.Report(context.Background(), testResult(outcome))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "long x = 10l;")
	assert.Contains(t, out, "^")
}

func TestJSONReporter_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewJSONReporter(noColorOptions(&buf))

	fixed := testDiag("UpperEll", "A.java", 3, 18)
	fixed.Fix = fix.SafeEdit(fix.Replacement(40, 41, "L"))
	fixed.FixTitle = "Replace with uppercase 'L'"

	result := testResult(testOutcome("A.java", fixed))

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 1)
	require.Len(t, output.Files[0].Diagnostics, 1)

	diag := output.Files[0].Diagnostics[0]
	assert.Equal(t, "UpperEll", diag.Code)
	assert.Equal(t, 3, diag.StartLine)
	assert.True(t, diag.Fixable)
	require.Len(t, diag.Fixes, 1)
	assert.Equal(t, "L", diag.Fixes[0].NewText)

	assert.Equal(t, 1, output.Summary.FilesChecked)
	assert.Equal(t, 1, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.Fixable)
}

func TestJSONReporter_ErrorAndConvergence(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewJSONReporter(noColorOptions(&buf))

	stuck := testOutcome("Stuck.java", testDiag("UpperEll", "Stuck.java", 1, 1))
	stuck.Result.Converged = false

	result := testResult(
		stuck,
		runner.FileOutcome{Path: "Missing.java", Error: errors.New("file not found")},
	)

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"converged": false`)
	assert.Contains(t, out, `"error": "file not found"`)

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, 1, output.Summary.FilesErrored)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := noColorOptions(&buf)
	opts.Compact = true
	rep := NewJSONReporter(opts)

	_, err := rep.Report(context.Background(), testResult(testOutcome("A.java")))
	require.NoError(t, err)

	// Compact output is a single line.
	assert.Equal(t, 1, bytes.Count(bytes.TrimSpace(buf.Bytes()), []byte("\n"))+1)
}
