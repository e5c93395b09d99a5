package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/javalint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root javalint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var verbose bool
	var quiet bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "javalint",
		Short: "A fast, self-fixing Java linter",
		Long: `javalint is a fast, self-fixing Java linter written in Go.

It reads standard checkstyle.xml configurations and suppressions.xml files,
checks Java sources against the configured rules, and can automatically fix
many issues while ensuring safety through conflict detection, dry-run mode,
and optional backups.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			switch {
			case verbose:
				logging.SetLevel("debug")
			case quiet:
				logging.SetLevel("error")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "only log errors")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to checkstyle.xml")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
