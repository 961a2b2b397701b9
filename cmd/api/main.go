package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/nurtura-health/triage-engine/internal/api/router"
	appconfig "github.com/nurtura-health/triage-engine/internal/config"
	"github.com/nurtura-health/triage-engine/internal/llm"
	"github.com/nurtura-health/triage-engine/internal/observability/metrics"
	"github.com/nurtura-health/triage-engine/internal/screening"
	"github.com/nurtura-health/triage-engine/internal/triage"
	"github.com/nurtura-health/triage-engine/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting triage-engine API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}

	var archive *screening.Archive
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		archive = screening.NewArchive(pool)
		logger.Info("screening archive enabled")
	} else {
		logger.Info("screening archive disabled (no DATABASE_URL)")
	}

	var decorator *triage.Decorator
	if cfg.DecorationEnabled && cfg.OpenAIAPIKey != "" {
		completer := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
		decorator = triage.NewDecorator(completer, logger)
		logger.Info("reply decoration enabled", "model", cfg.OpenAIModel)
	}

	registry := prometheus.NewRegistry()
	triageMetrics := metrics.NewTriageMetrics(registry)

	engine := triage.NewEngine(logger, triageMetrics, nil)
	contextStore := triage.NewContextStore(redisClient, cfg.ContextTTL)

	r := router.New(&router.Config{
		Logger:           logger,
		ChatHandler:      triage.NewHandler(engine, contextStore, decorator, logger),
		ScreeningHandler: screening.NewHandler(archive, triageMetrics, logger),
		MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	_ = redisClient.Close()
	logger.Info("server stopped")
}
