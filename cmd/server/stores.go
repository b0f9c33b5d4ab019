package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/socialhub/api/internal/config"
	"github.com/socialhub/api/internal/repository/memory"
	"github.com/socialhub/api/internal/repository/postgres"
	"github.com/socialhub/api/internal/repository/sqlite"
	"github.com/socialhub/api/internal/service"
)

type stores struct {
	accounts service.AccountStore
	messages service.MessageStore
	close    func() error
}

// openStores connects the configured driver and brings its schema up to date.
func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return stores{}, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return stores{}, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return stores{}, err
		}
		log.Info("Using postgres store")
		return stores{
			accounts: postgres.NewAccountRepository(db),
			messages: postgres.NewMessageRepository(db),
			close:    db.Close,
		}, nil

	case config.DriverSQLite:
		store, err := sqlite.NewStore(ctx, cfg.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		log.Info("Using sqlite store", "path", store.Path())
		return stores{
			accounts: store.AccountStore(),
			messages: store.MessageStore(),
			close:    store.Close,
		}, nil

	case config.DriverMemory:
		log.Warn("Using in-memory store, data is lost on exit")
		return stores{
			accounts: memory.NewAccountStore(),
			messages: memory.NewMessageStore(),
			close:    func() error { return nil },
		}, nil
	}
	return stores{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
