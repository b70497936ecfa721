package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cjrsolutions/cjrweb/cmd/cjr-cli/internal/format"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the services modules share through the registry",
	Long: `Boot every module against an unstarted server and list what they
registered in the service registry, with the Go type of each entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer quietLogs()()

		wired, err := wireApp(cmd.Context())
		if err != nil {
			return err
		}
		return format.ServicesRegistryTable(cmd.OutOrStdout(), wired.services)
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
