package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
)

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog file",
	Long: `Validate a catalog file the way the server does on startup and on hot reload:
every record must be complete, slugs must be well formed and unique, and
every listed slug must have a detail record.

Details without a listing entry are reported but do not fail validation.

Output:
  ✅ Success - the number of services and any orphaned details
  ❌ Error   - every problem found, one per line`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := catalogPath
		if len(args) == 1 {
			path = args[0]
		}

		c, err := catalog.Load(fs, path)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "❌ Catalog validation failed:\n%v\n", err)
			return err
		}

		source := path
		if source == "" {
			source = "embedded catalog"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ %s is valid\n", source)
		fmt.Fprintf(out, "   Services: %d\n", c.Len())
		for _, slug := range c.Orphans() {
			fmt.Fprintf(out, "   Warning: detail %q is not listed\n", slug)
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}
