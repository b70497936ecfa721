package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // Set at build time using -ldflags "-X .../cmd.version=..."

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cjr-cli version and the catalog it reads",
	Long: `Print the cjr-cli version and a one-line summary of the service catalog
the other commands would read. A catalog that fails to load is reported
here without failing the command.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cjr-cli v%s\n", version)

		source := catalogPath
		if source == "" {
			source = "embedded"
		}
		c, err := loadCatalog()
		if err != nil {
			fmt.Fprintf(out, "catalog: %s (unavailable: %v)\n", source, err)
			return
		}
		fmt.Fprintf(out, "catalog: %s (%d services, %d unlisted pages)\n", source, c.Len(), len(c.Orphans()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
