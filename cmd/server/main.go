package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dotacourier/match-api/internal/cache"
	"github.com/dotacourier/match-api/internal/config"
	"github.com/dotacourier/match-api/internal/handlers"
	"github.com/dotacourier/match-api/internal/logic"
	"github.com/dotacourier/match-api/internal/steam"
	"github.com/dotacourier/match-api/internal/watcher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	client := steam.NewClient(steam.Config{
		APIKey:  cfg.SteamAPIKey,
		BaseURL: cfg.SteamBaseURL,
		Logger:  logger,
	})

	// The hero catalogue is fetched once here and treated as read-only for
	// the rest of the process lifetime.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	heroes, err := client.Heroes(ctx)
	cancel()
	if err != nil {
		sugar.Fatalw("Failed to fetch hero catalogue", "error", err)
	}
	sugar.Infow("Loaded hero catalogue", "heroes", len(heroes))

	var perfCache logic.PerformanceCache
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid REDIS_URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
		perfCache = cache.NewRedis(redisClient, cfg.CacheTTL, logger)
		sugar.Infow("Using redis performance cache", "ttl", cfg.CacheTTL)
	} else {
		perfCache = cache.NewMemory(cfg.CacheTTL)
		sugar.Infow("Using in-memory performance cache", "ttl", cfg.CacheTTL)
	}

	service := logic.NewMatchService(logic.MatchServiceConfig{
		Client: client,
		Cache:  perfCache,
		Heroes: heroes,
		Logger: logger,
	})

	handlerCfg := handlers.Config{
		Service: service,
		Heroes:  heroes,
		Logger:  logger,
	}
	// Assign only when configured: a typed nil would defeat the nil check
	// guarding the readiness ping.
	if redisClient != nil {
		handlerCfg.Redis = redisClient
	}
	h := handlers.New(handlerCfg)

	watch := watcher.New(watcher.Config{
		Source:      service,
		Interval:    cfg.WatchInterval,
		Concurrency: cfg.WatchConcurrency,
		Logger:      logger,
	})
	watch.Start()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		sugar.Infow("Server listening", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
	watch.Stop()
}

// buildLogger writes to stdout and, when LOG_PATH is configured, to a
// prefix-named file under it.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Env == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if cfg.LogPath != "" {
		if err := os.MkdirAll(cfg.LogPath, 0o755); err != nil {
			return nil, err
		}
		zapCfg.OutputPaths = append(zapCfg.OutputPaths, filepath.Join(cfg.LogPath, cfg.LogPrefix+".log"))
	}
	return zapCfg.Build()
}
