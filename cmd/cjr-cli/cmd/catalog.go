package cmd

import (
	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Explore and check the service catalog",
	Long: `The catalog command reads the service catalog the site renders.

Available subcommands:
  list      List every service card in display order
  show      Print one service's detail record
  validate  Check a catalog file before deploying it

Examples:
  cjr-cli catalog list
  cjr-cli catalog list --format json
  cjr-cli catalog show rf-microondas
  cjr-cli catalog validate ./catalog.yaml`,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
