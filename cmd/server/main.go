package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"contractdesk/internal/config"
	"contractdesk/internal/handlers"
	"contractdesk/internal/routes"
	"contractdesk/internal/service"
	"contractdesk/internal/session"
	"contractdesk/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using system env or defaults")
	}
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	st := store.NewSeeded()

	tokens := newTokenStore(cfg)
	sessions := session.NewManager(cfg.JWTSecret, cfg.TokenTTL, tokens)

	opts := []service.Option{}
	if cfg.MockLatency > 0 {
		opts = append(opts, service.WithLatency(cfg.MockLatency))
	}
	systemSvc := service.NewSystemService(st, opts...)
	contractSvc := service.NewContractService(st, systemSvc, opts...)
	identitySvc := service.NewIdentityService(st, systemSvc, opts...)
	statisticsSvc := service.NewStatisticsService(st, opts...)

	h := handlers.New(contractSvc, identitySvc, statisticsSvc, systemSvc, sessions)

	r := gin.Default()
	routes.Setup(r, h, sessions)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
			return
		}
		srvErr <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-srvErr:
		if err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		}
		slog.Info("Shutdown complete")
	}
}

// newTokenStore picks the session backend: Redis when REDIS_ADDR is set
// and reachable, process memory otherwise.
func newTokenStore(cfg config.AppConfig) session.TokenStore {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, falling back to in-memory sessions", "error", err)
		return session.NewMemoryStore()
	}
	slog.Info("Using Redis session store", "addr", cfg.RedisAddr)
	return session.NewRedisStore(client)
}
