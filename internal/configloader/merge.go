package configloader

import "github.com/yaklabco/javalint/pkg/config"

// Overrides holds CLI flag values to layer on top of the file-based
// configuration. Nil pointers mean the flag was not set.
type Overrides struct {
	Fix          *bool
	UnsafeFixes  *bool
	DryRun       *bool
	Backup       *bool
	Jobs         *int
	MaxFixPasses *int
	Format       string
	Exclude      []string
}

// Apply copies the set overrides onto the config.
func (o *Overrides) Apply(cfg *config.Config) {
	if o == nil {
		return
	}
	if o.Fix != nil {
		cfg.Fix = *o.Fix
	}
	if o.UnsafeFixes != nil {
		cfg.UnsafeFixes = *o.UnsafeFixes
	}
	if o.DryRun != nil {
		cfg.DryRun = *o.DryRun
	}
	if o.Backup != nil {
		cfg.Backup = *o.Backup
	}
	if o.Jobs != nil {
		cfg.Jobs = *o.Jobs
	}
	if o.MaxFixPasses != nil {
		cfg.MaxFixPasses = *o.MaxFixPasses
	}
	if o.Format != "" {
		cfg.Format = config.OutputFormat(o.Format)
	}
	cfg.Exclude = append(cfg.Exclude, o.Exclude...)
}
