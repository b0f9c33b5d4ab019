package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/socialhub/api/internal/cache"
	"github.com/socialhub/api/internal/events"
)

var watchConsumer string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Log account and message events from the Redis streams",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !cfg.RedisEnabled() {
			return errors.New("REDIS_ADDR must be set to watch events")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		redis, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer redis.Close()

		subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
			Group:    "activity-watchers",
			Consumer: watchConsumer,
			Streams:  []string{events.AccountEventsStream, events.MessageEventsStream},
			Handler:  events.LogActivity(log),
		}, log)

		if err := subscriber.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("subscriber stopped: %w", err)
		}
		return nil
	},
}

func init() {
	hostname, _ := os.Hostname()
	watchCmd.Flags().StringVar(&watchConsumer, "consumer", "watcher-"+hostname, "consumer name within the activity-watchers group")
	rootCmd.AddCommand(watchCmd)
}
