package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openStores(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer s.close()

		log.Info("Schema is up to date", "driver", cfg.StoreDriver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
