package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/javalint/internal/ui/pretty"
	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/lint"
	_ "github.com/yaklabco/javalint/pkg/lint/rules" // Register built-in rules
)

// ruleInfo is the JSON shape for a single registered rule.
type ruleInfo struct {
	Name  string   `json:"name"`
	Kinds []string `json:"kinds,omitempty"`
}

func newRulesCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long: `List all built-in rules by their checkstyle module name.

For each rule the node kinds it inspects are shown; rules without a
kind list run on every node.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}

func runRules(cmd *cobra.Command, jsonOutput bool) error {
	infos := collectRuleInfos()

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", styles.Bold.Render(fmt.Sprintf("Available rules (%d)", len(infos))))

	for _, info := range infos {
		kinds := "all nodes"
		if len(info.Kinds) > 0 {
			kinds = strings.Join(info.Kinds, ", ")
		}
		fmt.Fprintf(out, "  %s  %s\n",
			styles.RuleID.Render(info.Name),
			styles.Dim.Render(kinds),
		)
	}

	return nil
}

func collectRuleInfos() []ruleInfo {
	names := lint.DefaultRegistry.Names()
	infos := make([]ruleInfo, 0, len(names))

	for _, name := range names {
		info := ruleInfo{Name: name}

		// Kinds come from a rule instance. Factories that reject empty
		// properties still get listed, just without a kind column.
		if factory, ok := lint.DefaultRegistry.Lookup(name); ok {
			if rule, err := factory(config.Properties{}); err == nil {
				info.Kinds = rule.RelevantKinds()
			}
		}

		infos = append(infos, info)
	}

	return infos
}
