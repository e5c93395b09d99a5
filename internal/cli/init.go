package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const starterCheckstyle = `<?xml version="1.0"?>
<!DOCTYPE module PUBLIC
    "-//Checkstyle//DTD Checkstyle Configuration 1.3//EN"
    "https://checkstyle.org/dtds/configuration_1_3.dtd">
<module name="Checker">
  <module name="FileTabCharacter"/>
  <module name="TreeWalker">
    <module name="UpperEll"/>
    <module name="ModifierOrder"/>
    <module name="EmptyStatement"/>
    <module name="EmptyBlock"/>
    <module name="RedundantImport"/>
    <module name="UnusedImports"/>
    <module name="TypeName"/>
    <module name="MethodName"/>
    <module name="LineLength">
      <property name="max" value="120"/>
    </module>
  </module>
</module>
`

const starterOverlay = `# javalint tool settings. Rule selection lives in checkstyle.xml;
# this file controls how javalint runs them.

# Per-rule mode overrides: check, fix, or disabled.
rules: {}

# Apply fixes that may change program behavior.
unsafe-fixes: false

# Output format: text, json, diff, summary.
output: text

# Glob patterns to exclude from linting.
exclude:
  - "**/generated/**"
  - "**/target/**"
`

func newInitCommand() *cobra.Command {
	var (
		force   bool
		overlay bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration",
		Long: `Create a starter checkstyle.xml in the current directory.

With --overlay, also creates a javalint.yaml with tool settings such as
per-rule modes and output format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, force, overlay)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing configuration files")
	cmd.Flags().BoolVar(&overlay, "overlay", false, "also create javalint.yaml")

	return cmd
}

func runInit(cmd *cobra.Command, force, overlay bool) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{"checkstyle.xml", starterCheckstyle},
	}
	if overlay {
		files = append(files, struct {
			name    string
			content string
		}{"javalint.yaml", starterOverlay})
	}

	out := cmd.OutOrStdout()
	for _, f := range files {
		path := filepath.Join(workDir, f.name)

		if !force {
			if _, statErr := os.Stat(path); statErr == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", f.name)
			} else if !errors.Is(statErr, os.ErrNotExist) {
				return fmt.Errorf("check %s: %w", f.name, statErr)
			}
		}

		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		fmt.Fprintf(out, "Created %s\n", f.name)
	}

	fmt.Fprintln(out, "\nRun 'javalint check' to lint your project.")
	return nil
}
