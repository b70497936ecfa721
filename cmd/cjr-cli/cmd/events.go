package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cjrsolutions/cjrweb/cmd/cjr-cli/internal/format"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"

	// Declares contact.submitted. catalog.reloaded comes in through root.go.
	_ "github.com/cjrsolutions/cjrweb/internal/contact"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events published on the internal bus",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return format.EventsTable(cmd.OutOrStdout(), pubsub.Events())
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
