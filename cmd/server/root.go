package main

import (
	"log/slog"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"

	"github.com/socialhub/api/internal/config"
)

var (
	cfg config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "socialhub",
	Short:         "Accounts and short messages over HTTP",
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		log = logs.GetLoggerFromString(cfg.LogLevel)
		return nil
	},
}
