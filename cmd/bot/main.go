package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/moodguard/moodguard/internal/adapter/openai"
	"github.com/moodguard/moodguard/internal/adapter/postgres"
	"github.com/moodguard/moodguard/internal/adapter/redis"
	"github.com/moodguard/moodguard/internal/adapter/telegram"
	"github.com/moodguard/moodguard/internal/app"
	"github.com/moodguard/moodguard/internal/domain"
	"github.com/moodguard/moodguard/internal/platform/config"
	"github.com/moodguard/moodguard/internal/platform/logging"
	"github.com/moodguard/moodguard/internal/sentiment"
	"github.com/moodguard/moodguard/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func setupRedis(cfg *config.Config) *goredis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	redisClient := setupRedis(cfg)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	var nameCache domain.NameCache = app.NewMemoryNameCache(clock)
	if redisClient != nil {
		nameCache = redis.NewNameCache(redisClient)
	}

	tg := telegram.NewClient(cfg.TelegramBotToken, clock)
	ai := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, clock)

	service := app.NewService(app.ServiceConfig{
		GroupChatID: cfg.GroupChatID,
		Transport:   tg,
		Classifier:  sentiment.NewClassifier(ai),
		Scores:      postgres.NewScoreRepo(pool),
		Feedback:    postgres.NewFeedbackRepo(pool),
		Directory:   app.NewDirectory(tg, nameCache),
		Generator:   app.NewGenerator(ai, ai, cfg.CommunityName),
	})

	poller := telegram.NewPoller(tg, service)
	pollCtx, stopPolling := context.WithCancel(context.Background())

	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		if err := poller.Run(pollCtx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Poller stopped", "error", err)
		}
	}()

	srv := server.New(cfg.Port, pool, redisClient)

	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		stopPolling()
		<-pollerDone

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
