// Init command creates the config and data directories and the database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the platboard storage",
	Long:  `Initialize creates the configuration directory, a default config.yaml, and the data directory with an empty database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and config.yaml are created by PersistentPreRunE;
		// attaching the store creates the data dir and schema.
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized platboard storage in %s\n", dataDir)
		return nil
	},
}
