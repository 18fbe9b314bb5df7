package cmd

import (
	"fmt"

	"github.com/glotscan/glotscan/internal/domainlang"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tablesCmd prints the active domain-language rules as YAML. The output
// is a valid input for --tables, so the workflow to customize the
// heuristics is: dump, edit, pass back in.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the active domain-language tables as YAML",
	Long: `Tables prints the TLD-to-language mapping and the exact-domain
exceptions the scan uses. The built-in tables are a starter heuristic;
dump them, adjust, and point scans at your copy:

  glotscan tables > mine.yaml
  glotscan scan --tables mine.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		resolver, err := domainlang.Load(cfg.Tables.Path)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(resolver.Tables())
		if err != nil {
			return fmt.Errorf("marshaling tables: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
