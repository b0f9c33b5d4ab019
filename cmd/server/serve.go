package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/socialhub/api/internal/cache"
	"github.com/socialhub/api/internal/events"
	"github.com/socialhub/api/internal/handler"
	"github.com/socialhub/api/internal/middleware"
	"github.com/socialhub/api/internal/models"
	"github.com/socialhub/api/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer s.close()

	passwords, err := cfg.Passwords()
	if err != nil {
		return err
	}

	messageStore := s.messages
	var publisher service.EventPublisher
	if cfg.RedisEnabled() {
		redis, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer redis.Close()

		views := cache.NewViewCache[models.Message](redis.Client, cfg.CacheTTL, log)
		messageStore = cache.NewCachedMessageStore(messageStore, views)
		publisher = events.NewPublisher(redis.Client)
		log.Info("Redis cache and event streams enabled", "addr", cfg.RedisAddr)
	}

	accountSvc := service.NewAccountService(s.accounts, passwords, publisher, log)
	messageSvc := service.NewMessageService(messageStore, s.accounts, publisher, log)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.LoggingMiddleware(log))
	handler.RegisterRoutes(router,
		handler.NewAccountHandler(accountSvc),
		handler.NewMessageHandler(messageSvc, messageSvc),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", "addr", srv.Addr, "driver", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
