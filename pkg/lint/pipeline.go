package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/fsutil"
)

// DefaultMaxFixPasses bounds the fix loop. Each pass re-parses and re-lints
// the patched content; files that need more passes than this are reported
// as non-converged rather than looping forever.
const DefaultMaxFixPasses = 10

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates a parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult holds the diagnostics from the FINAL lint pass: for fix
	// mode, the issues remaining after all fixes were applied.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Modified is true if the file content was changed.
	Modified bool

	// ModifiedContent is the new content after applying fixes (nil if not
	// modified).
	ModifiedContent []byte

	// Diff is the unified diff for dry-run mode (empty otherwise).
	Diff string

	// Skipped is true if the file was skipped (e.g., concurrent
	// modification).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool

	// FixPasses is the number of passes that applied at least one edit.
	FixPasses int

	// EditsApplied is the total number of edits applied across all passes.
	EditsApplied int

	// EditsSkipped is the total number of edits rejected by conflict
	// resolution across all passes.
	EditsSkipped int

	// FixesApplied is the number of fixes fully applied across all passes.
	FixesApplied int

	// Converged is false when fixable diagnostics remain after the pass
	// ceiling, or when a pass could not apply any of its proposed edits.
	// Non-convergence is a warning, never an error; the best content so
	// far is kept.
	Converged bool
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "fixed (backup created)"
	case pr.Written:
		return "fixed"
	case pr.Modified:
		return "changes pending"
	case pr.FileResult != nil && pr.HasIssues():
		return "issues found"
	default:
		return "ok"
	}
}

// PipelineOptions controls fix behavior for a run.
type PipelineOptions struct {
	// Fix enables auto-fix mode.
	Fix bool

	// UnsafeFixes also applies fixes marked unsafe.
	UnsafeFixes bool

	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// MaxFixPasses limits the number of fix iterations.
	// Zero means DefaultMaxFixPasses.
	MaxFixPasses int
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from a resolved config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		Fix:                 cfg.Fix,
		UnsafeFixes:         cfg.UnsafeFixes,
		DryRun:              cfg.DryRun,
		Backup:              fsutil.BackupConfig{Enabled: cfg.Backup, Mode: fsutil.BackupModeSidecar},
		StrictRaceDetection: true,
		MaxFixPasses:        cfg.MaxFixPasses,
	}
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct {
	// Engine is the lint engine used for parsing and rule execution.
	Engine *Engine

	// Config is the resolved run configuration; rule modes decide which
	// diagnostics may contribute fixes.
	Config *config.Config
}

// NewPipeline creates a pipeline over the given engine and config.
func NewPipeline(engine *Engine, cfg *config.Config) *Pipeline {
	return &Pipeline{Engine: engine, Config: cfg}
}

// ProcessFile runs the full pipeline for a single file.
//
// The pipeline performs the following steps:
//  1. Read and hash the original file.
//  2. Lint, then loop while in fix mode: plan the conflict-free edit set,
//     apply it, re-parse and re-lint, until no fixable diagnostics remain
//     or the pass ceiling is hit.
//  3. Generate diff (if dry-run mode).
//  4. Check for concurrent modifications.
//  5. Create backup (if enabled).
//  6. Write the modified content atomically.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	originalContent, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, originalContent, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || opts.DryRun {
		return result, nil
	}

	// Refuse to clobber a file that changed while we were working on it.
	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent processes in-memory content without writing. This is the
// multi-pass fix loop; ProcessFile wraps it with I/O and safety checks.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	originalContent []byte,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path, Converged: true}

	maxPasses := opts.MaxFixPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxFixPasses
	}

	content := originalContent

	fileResult, err := p.lint(ctx, path, content)
	if err != nil {
		return nil, err
	}

	for pass := 0; opts.Fix && pass < maxPasses; pass++ {
		fixes := p.collectFixes(fileResult.Diagnostics, opts.UnsafeFixes)
		if len(fixes) == 0 {
			break
		}

		plan, err := fix.BuildPlan(fixes, len(content))
		if err != nil {
			return nil, fmt.Errorf("plan fixes for %s: %w", path, err)
		}
		if !plan.HasEdits() {
			// Fixable diagnostics remain but no edit could be accepted;
			// another pass would do the same thing.
			result.Converged = false
			break
		}

		content = fix.ApplyEdits(content, plan.Edits)
		result.FixPasses++
		result.EditsApplied += len(plan.Edits)
		result.EditsSkipped += len(plan.Skipped)
		result.FixesApplied += plan.AppliedFixes
		result.Modified = true

		// Patched content gets a fresh parse; fixes from the previous
		// tree no longer have valid offsets.
		fileResult, err = p.lint(ctx, path, content)
		if err != nil {
			return nil, err
		}
	}

	if opts.Fix && len(p.collectFixes(fileResult.Diagnostics, opts.UnsafeFixes)) > 0 {
		result.Converged = false
	}

	result.FileResult = fileResult
	if result.Modified {
		result.ModifiedContent = content
		if opts.DryRun {
			diff, err := fix.GenerateDiff(path, originalContent, content)
			if err != nil {
				return nil, err
			}
			result.Diff = diff
		}
	}

	return result, nil
}

func (p *Pipeline) lint(ctx context.Context, path string, content []byte) (*FileResult, error) {
	fr, err := p.Engine.LintFile(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	return fr, nil
}

// collectFixes gathers the applicable fixes from diagnostics in order.
// A diagnostic contributes its fix when its rule's mode allows fixing and
// the fix's applicability is enabled for this run.
func (p *Pipeline) collectFixes(diags []Diagnostic, unsafeFixes bool) []*fix.Fix {
	var fixes []*fix.Fix
	for i := range diags {
		d := &diags[i]
		if !d.HasFix() {
			continue
		}
		if p.Config.Mode(d.Rule) != config.ModeFix {
			continue
		}
		if !d.Fix.IsSafe() && !unsafeFixes {
			continue
		}
		fixes = append(fixes, d.Fix)
	}
	return fixes
}

// checkModified checks if a file has been modified since it was read.
func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	if strict {
		return fsutil.CheckModified(ctx, info)
	}
	return fsutil.CheckModifiedQuick(ctx, info)
}

// categorizeError wraps an error with the appropriate pipeline error type.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrWriteFailure)
}
