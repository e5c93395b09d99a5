// Package configloader resolves the effective run configuration from
// checkstyle.xml, an optional suppressions.xml, the optional javalint.yaml
// overlay, environment variables, and CLI flags.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/lint"
)

// ErrNoConfig is returned when no checkstyle.xml could be located and no
// explicit config path was given.
var ErrNoConfig = errors.New("no checkstyle.xml found")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for config files.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, upward discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Overrides contains configuration from CLI flags.
	// These take highest precedence.
	Overrides *Overrides
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.Overrides)
//  2. Environment variables (JAVALINT_*)
//  3. javalint.yaml overlay
//  4. checkstyle.xml (explicit --config or upward search)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Checkstyle = opts.ExplicitPath
	}
	result.Paths = paths

	if paths.Checkstyle == "" {
		return nil, ErrNoConfig
	}

	cfg := config.Default()

	if err := loadCheckstyle(cfg, paths, result); err != nil {
		return nil, err
	}

	if paths.Overlay != "" {
		if err := loadOverlay(cfg, paths.Overlay, result); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.Overrides != nil {
		opts.Overrides.Apply(cfg)
	}

	validation := Validate(cfg, lint.DefaultRegistry.Names())
	if len(validation.Errors) > 0 {
		return nil, validation.Errors[0]
	}
	result.Warnings = append(result.Warnings, validation.Warnings...)

	result.Config = cfg
	return result, nil
}

// loadCheckstyle parses checkstyle.xml into the config: rule modules,
// suppression filters, and any external suppressions they reference.
func loadCheckstyle(cfg *config.Config, paths *ConfigPaths, result *LoadResult) error {
	data, err := os.ReadFile(paths.Checkstyle)
	if err != nil {
		return fmt.Errorf("read config %s: %w", paths.Checkstyle, err)
	}

	cs, err := config.ParseCheckstyle(data)
	if err != nil {
		return &lint.ConfigError{Reason: "invalid checkstyle.xml", Err: err}
	}
	result.LoadedFrom = append(result.LoadedFrom, paths.Checkstyle)

	cfg.Rules = cs.Rules

	configDir := filepath.Dir(paths.Checkstyle)
	suppressionsLoaded := false

	for _, filter := range cs.Filters {
		switch filter.Name {
		case config.ModuleSuppressionFilter:
			path := filter.Properties.GetString("file", "")
			if path == "" {
				return &lint.ConfigError{
					Module:   filter.Name,
					Property: "file",
					Reason:   "missing required property",
				}
			}
			if !filepath.IsAbs(path) {
				path = filepath.Join(configDir, path)
			}
			optional, err := filter.Properties.GetBool("optional", false)
			if err != nil {
				return &lint.ConfigError{Module: filter.Name, Property: "optional", Reason: "invalid value", Err: err}
			}
			if err := loadSuppressions(cfg, path, optional, result); err != nil {
				return err
			}
			suppressionsLoaded = true

		case config.ModuleSuppressionCommentFilter:
			cfg.CommentFilters = append(cfg.CommentFilters, filter)

		case config.ModuleSuppressWarningsFilter, config.ModuleSuppressWarningsHolder:
			cfg.SuppressWarnings = true
		}
	}

	// A suppressions.xml sitting next to the config file is honored even
	// without an explicit SuppressionFilter module.
	if !suppressionsLoaded && paths.Suppressions != "" {
		if err := loadSuppressions(cfg, paths.Suppressions, false, result); err != nil {
			return err
		}
	}

	return nil
}

// loadSuppressions reads and parses a suppressions.xml file.
func loadSuppressions(cfg *config.Config, path string, optional bool, result *LoadResult) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("optional suppressions file %s not found", path))
			return nil
		}
		return fmt.Errorf("read suppressions %s: %w", path, err)
	}

	records, err := config.ParseSuppressions(data)
	if err != nil {
		return &lint.ConfigError{
			Module: config.ModuleSuppressionFilter,
			Reason: "invalid suppressions file " + path,
			Err:    err,
		}
	}

	cfg.Suppressions = append(cfg.Suppressions, records...)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}

// loadOverlay reads javalint.yaml and applies it to the config.
func loadOverlay(cfg *config.Config, path string, result *LoadResult) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overlay %s: %w", path, err)
	}

	overlay, err := config.ParseOverlay(data)
	if err != nil {
		return &lint.ConfigError{Reason: "invalid overlay " + path, Err: err}
	}

	applyOverlay(cfg, overlay)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}

// applyOverlay copies overlay settings onto the config.
func applyOverlay(cfg *config.Config, overlay *config.Overlay) {
	for name, mode := range overlay.Rules {
		cfg.RuleModes[name] = mode
	}
	if overlay.UnsafeFixes {
		cfg.UnsafeFixes = true
	}
	if overlay.MaxFixPasses > 0 {
		cfg.MaxFixPasses = overlay.MaxFixPasses
	}
	if overlay.Jobs > 0 {
		cfg.Jobs = overlay.Jobs
	}
	if overlay.Backup {
		cfg.Backup = true
	}
	if overlay.Output != "" {
		cfg.Format = config.OutputFormat(overlay.Output)
	}
	cfg.Exclude = append(cfg.Exclude, overlay.Exclude...)
}

// parsePositiveInt parses a strictly positive integer setting.
func parsePositiveInt(value, name string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid value for %s: %q (expected positive integer)", name, value)
	}
	return n, nil
}
