package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cjrsolutions/cjrweb/cmd/cjr-cli/internal/format"
)

var listOutputFormat string

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every service in display order",
	Long: `List the service summaries in the order the listing page renders them.

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		switch listOutputFormat {
		case "json":
			return format.ServicesJSON(cmd.OutOrStdout(), c.Summaries())
		case "table":
			return format.ServicesTable(cmd.OutOrStdout(), c.Summaries())
		default:
			return fmt.Errorf("unsupported output format %q, use 'table' or 'json'", listOutputFormat)
		}
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogListCmd.Flags().StringVarP(&listOutputFormat, "format", "f", "table", "Output format (table, json)")
}
