package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/javalint/internal/configloader"
	"github.com/yaklabco/javalint/internal/logging"
	"github.com/yaklabco/javalint/pkg/lint"
	_ "github.com/yaklabco/javalint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/javalint/pkg/reporter"
	"github.com/yaklabco/javalint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format       string
	exclude      []string
	jobs         int
	maxFixPasses int
	unsafeFixes  bool
	dryRun       bool
	backup       bool
	noContext    bool
	compact      bool
}

func newCheckCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Java files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, false)
		},
	}

	addCommonFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check Java files against the configured checkstyle rules.

By default, checks all .java files in the current directory and
subdirectories. Specify paths to check specific files or directories.
The configuration is read from the nearest checkstyle.xml, with an
optional javalint.yaml overlay for tool settings.

Examples:
  javalint check                 # Check current directory
  javalint check src/            # Check src directory
  javalint check Main.java       # Check single file
  javalint check --format json   # Output as JSON for CI`

func newFixCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Check Java files and fix issues",
		Long:  fixLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, true)
		},
	}

	addCommonFlags(cmd, flags)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show fixes as diffs without applying them")
	cmd.Flags().BoolVar(&flags.unsafeFixes, "unsafe-fixes", false, "also apply fixes marked unsafe")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "create backups before writing fixes")
	cmd.Flags().IntVar(&flags.maxFixPasses, "max-fix-passes", 0, "fix pass ceiling (0 = default)")

	return cmd
}

const fixLongDescription = `Check Java files and automatically fix issues.

Safe fixes are applied by default; fixes that may change program behavior
require --unsafe-fixes. Fixing runs in passes until no fixable issues
remain or the pass ceiling is reached. Remaining issues are reported the
same way check reports them.

Examples:
  javalint fix                   # Fix current directory
  javalint fix --dry-run         # Show fixes as diffs without applying
  javalint fix --unsafe-fixes    # Also apply unsafe fixes
  javalint fix --backup          # Keep a backup of each modified file`

func addCommonFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, diff, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}

// buildOverrides translates changed CLI flags into loader overrides.
func buildOverrides(cmd *cobra.Command, flags *lintFlags, fixMode bool) *configloader.Overrides {
	overrides := &configloader.Overrides{
		Format:  flags.format,
		Exclude: flags.exclude,
	}
	overrides.Fix = &fixMode

	if cmd.Flags().Changed("jobs") {
		overrides.Jobs = &flags.jobs
	}
	if cmd.Flags().Changed("max-fix-passes") {
		overrides.MaxFixPasses = &flags.maxFixPasses
	}
	if cmd.Flags().Changed("dry-run") {
		overrides.DryRun = &flags.dryRun
	}
	if cmd.Flags().Changed("unsafe-fixes") {
		overrides.UnsafeFixes = &flags.unsafeFixes
	}
	if cmd.Flags().Changed("backup") {
		overrides.Backup = &flags.backup
	}

	return overrides
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags, fixMode bool) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Overrides:    buildOverrides(cmd, flags, fixMode),
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	// Build the configured rule set; invalid modules or properties fail
	// here, before any file is touched.
	set, err := lint.DefaultRegistry.Build(cfg)
	if err != nil {
		return err
	}

	engine, err := lint.NewEngine(set, cfg)
	if err != nil {
		return err
	}

	pipeline := lint.NewPipeline(engine, cfg)
	lintRunner := runner.New(pipeline)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: cfg.Exclude,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	logRunStats(logger, result)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	// Dry-run output is the diff itself.
	if cfg.DryRun && format == reporter.FormatText {
		format = reporter.FormatDiff
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrLintIssuesFound
	}

	return nil
}

// logRunStats emits debug-level aggregate numbers for the run.
func logRunStats(logger *log.Logger, result *runner.Result) {
	logger.Debug("lint run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
		logging.FieldSuppressed, result.Stats.DiagnosticsSuppressed,
		logging.FieldParseFailures, result.Stats.ParseFailures,
		logging.FieldFilesModified, result.Stats.FilesModified,
	)
}
