package cli

import (
	"errors"

	"github.com/yaklabco/javalint/internal/configloader"
	"github.com/yaklabco/javalint/pkg/lint"
	"github.com/yaklabco/javalint/pkg/runner"
)

// Exit codes follow BSD sysexits conventions where applicable.
const (
	// ExitSuccess indicates no issues were found.
	ExitSuccess = 0

	// ExitIssuesFound indicates lint issues were found.
	ExitIssuesFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates a configuration problem.
	ExitConfigError = 65

	// ExitInternalError indicates an unexpected internal failure.
	ExitInternalError = 70

	// ExitIOError indicates a file could not be read or written.
	ExitIOError = 74
)

// ExitCodeForError maps an error to the process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrLintIssuesFound) {
		return ExitIssuesFound
	}

	var configErr *lint.ConfigError
	if errors.As(err, &configErr) || errors.Is(err, configloader.ErrNoConfig) {
		return ExitConfigError
	}

	if errors.Is(err, lint.ErrFileNotFound) ||
		errors.Is(err, lint.ErrPermissionDenied) ||
		errors.Is(err, lint.ErrWriteFailure) {
		return ExitIOError
	}

	return ExitInternalError
}

// ExitCodeFromResult derives the exit code from a completed run.
// Parse failures and unreadable files count as issues: a file that
// could not be checked is not a clean file.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitInternalError
	}

	if result.Stats.DiagnosticsTotal > 0 ||
		result.Stats.ParseFailures > 0 ||
		result.Stats.FilesErrored > 0 {
		return ExitIssuesFound
	}

	// Dry-run leaves changes pending instead of writing them; a file that
	// would change is not a clean file either.
	for _, file := range result.Files {
		if file.Result != nil && file.Result.Modified && !file.Result.Written {
			return ExitIssuesFound
		}
	}

	return ExitSuccess
}
