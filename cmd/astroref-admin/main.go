// Command astroref-admin applies the schema, seeds taxonomy rows and exports them
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "astroref-admin",
		Short:         "Maintenance commands for the astroref database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "dotenv files to load before reading config (default .env.local, .env)")

	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
