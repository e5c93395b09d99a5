package configloader

import (
	"fmt"
	"slices"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/lint"
)

// ValidationResult carries validation errors and warnings.
// Errors are fatal; warnings are reported but do not stop the run.
type ValidationResult struct {
	Errors   []error
	Warnings []string
}

// knownFormats are the accepted output format names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = []config.OutputFormat{
	config.FormatText,
	config.FormatJSON,
	config.FormatSummary,
	config.FormatDiff,
}

// Validate checks run-level settings and cross-references overlay rule
// modes against the registered rule names. Unknown rule modules themselves
// are rejected later by the registry build, which has the full module
// context for its errors.
func Validate(cfg *config.Config, ruleNames []string) *ValidationResult {
	result := &ValidationResult{}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, &lint.ConfigError{
			Property: "jobs",
			Reason:   fmt.Sprintf("must not be negative, got %d", cfg.Jobs),
		})
	}

	if cfg.MaxFixPasses < 0 {
		result.Errors = append(result.Errors, &lint.ConfigError{
			Property: "max-fix-passes",
			Reason:   fmt.Sprintf("must not be negative, got %d", cfg.MaxFixPasses),
		})
	}

	if !slices.Contains(knownFormats, cfg.Format) {
		result.Errors = append(result.Errors, &lint.ConfigError{
			Property: "output",
			Reason:   fmt.Sprintf("unknown format %q (want text, json, summary, or diff)", cfg.Format),
		})
	}

	configured := make([]string, 0, len(cfg.RuleModes))
	for name := range cfg.RuleModes {
		configured = append(configured, name)
	}
	slices.Sort(configured)
	for _, name := range configured {
		if !slices.Contains(ruleNames, name) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("overlay configures mode for unknown rule %q", name))
		}
	}

	return result
}
