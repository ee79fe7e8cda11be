package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hotelops/config"
	"hotelops/routes"
	"hotelops/services"
)

const shutdownTimeout = 15 * time.Second

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

// newDenylist picks redis when an address is configured and the in-process
// list otherwise.
func newDenylist(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) (services.TokenDenylist, func(), error) {
	if cfg.Addr == "" {
		log.Warn("REDIS_ADDR not set; revoked tokens are kept in memory")
		return services.NewMemoryDenylist(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	log.Info("redis token denylist enabled", zap.String("addr", cfg.Addr))
	return services.NewRedisDenylist(client), func() { client.Close() }, nil
}

func runServe(cmd *cobra.Command) error {
	cfg, log, db, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer log.Sync()

	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	denylist, closeDenylist, err := newDenylist(cmd.Context(), cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeDenylist()

	tokens := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL, denylist)
	router := routes.New(db, tokens, cfg.CORSOrigins)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server stopped gracefully")
	return nil
}
