package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Print a service's detail record as YAML",
	Example: `  cjr-cli catalog show rf-microondas
  cjr-cli catalog show fibra-optica --catalog ./catalog.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		detail, ok := c.Resolve(args[0])
		if !ok {
			return fmt.Errorf("service %q not found; use 'cjr-cli catalog list' to see the slugs", args[0])
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(detail); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
}
