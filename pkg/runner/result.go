package runner

import "github.com/yaklabco/javalint/pkg/lint"

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// May be nil if the file encountered an error during processing.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped (e.g., due to concurrent
	// modification).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// ParseFailures is the number of files whose syntax trees contained
	// error nodes. Those files were still linted over the recoverable
	// parts.
	ParseFailures int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsFixable is the number of diagnostics that have auto-fixes.
	DiagnosticsFixable int

	// DiagnosticsSuppressed is the number of diagnostics dropped by
	// suppression across all files.
	DiagnosticsSuppressed int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// FilesModified is the number of files that were modified by fixes.
	FilesModified int

	// FilesUnconverged is the number of files whose fix loop hit the pass
	// ceiling with fixable diagnostics remaining.
	FilesUnconverged int

	// EditsApplied is the total number of edits applied across all files.
	EditsApplied int

	// FixesApplied is the number of fixes fully applied across all files.
	FixesApplied int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || len(r.Errors) > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Result.Written {
		r.Stats.FilesModified++
	}
	if !outcome.Result.Converged {
		r.Stats.FilesUnconverged++
	}

	r.Stats.EditsApplied += outcome.Result.EditsApplied
	r.Stats.FixesApplied += outcome.Result.FixesApplied

	if outcome.Result.FileResult != nil {
		if outcome.Result.ParseErrors {
			r.Stats.ParseFailures++
		}

		diagCount := len(outcome.Result.Diagnostics)
		r.Stats.DiagnosticsTotal += diagCount
		r.Stats.DiagnosticsFixable += outcome.Result.FixableCount()
		r.Stats.DiagnosticsSuppressed += outcome.Result.Suppressed

		if diagCount > 0 {
			r.Stats.FilesWithIssues++
		}
	}
}
