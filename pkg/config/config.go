package config

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
	FormatDiff    OutputFormat = "diff"
)

// Config is the fully resolved configuration for a run: checkstyle.xml
// modules, overlay settings, external suppressions, and CLI-level options
// merged by internal/configloader.
type Config struct {
	// Rules are the configured rule modules in document order.
	Rules []Module

	// RuleModes maps rule names to their resolved mode.
	// Rules not present default to ModeFix.
	RuleModes map[string]RuleMode

	// CommentFilters are SuppressionCommentFilter modules from
	// checkstyle.xml; each contributes an off/on comment region scanner.
	CommentFilters []Module

	// SuppressWarnings is true when a SuppressWarningsFilter is configured,
	// enabling the @SuppressWarnings annotation scan.
	SuppressWarnings bool

	// Suppressions are external suppression records from suppressions.xml.
	Suppressions []Suppression

	// Exclude holds glob patterns for files to skip during discovery.
	Exclude []string

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool

	// UnsafeFixes enables applying fixes marked unsafe.
	UnsafeFixes bool

	// DryRun shows what would be fixed without making changes.
	DryRun bool

	// MaxFixPasses bounds the fix loop. Zero means the default.
	MaxFixPasses int

	// Jobs specifies the number of parallel workers.
	Jobs int

	// Backup enables timestamped backups before writing fixes.
	Backup bool

	// Format specifies the output format.
	Format OutputFormat
}

// Mode returns the resolved mode for a rule, defaulting to ModeFix.
func (c *Config) Mode(rule string) RuleMode {
	if c == nil {
		return ModeFix
	}
	if m, ok := c.RuleModes[rule]; ok {
		return m
	}
	return ModeFix
}

// Default returns a configuration with no rules and default run settings.
func Default() *Config {
	return &Config{
		RuleModes: make(map[string]RuleMode),
		Format:    FormatText,
	}
}
