package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
)

var (
	catalogPath string
	// fs is swapped for a MemMapFs in tests.
	fs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "cjr-cli",
	Short: "CJR Solutions site tooling",
	Long: `cjr-cli inspects the CJR Solutions site without starting it.

Available commands:
  catalog   List, show and validate the service catalog
  routes    Print the HTTP routes the server registers
  services  List the services modules share through the registry
  events    List the events published on the internal bus
  version   Print the version

The catalog is read from --catalog, then CATALOG_PATH, then the copy
embedded in the binary.

Use "cjr-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "Path to a catalog YAML file (empty uses the embedded catalog)")
}

func loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(fs, catalogPath)
}
