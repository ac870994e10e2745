package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"fairway/internal/api"
	"fairway/internal/cache"
	"fairway/internal/config"
	"fairway/internal/events"
	"fairway/internal/metrics"
	"fairway/internal/notify"
	"fairway/internal/schedule"
	"fairway/internal/service"
	"fairway/internal/store"
)

func main() {
	// Initialize logger
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("FAIRWAY_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	metrics.Register()

	st, err := store.OpenSQLite(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("open reservation store")
	}
	defer st.Close()

	bus := events.NewBus()

	var gridCache service.GridCache
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		gridCache = cache.New(rdb, cfg.CacheTTL(), &logger)
		logger.Info().Str("addr", cfg.Redis.Address).Msg("schedule cache enabled")
	}

	if cfg.Telegram.BotToken != "" {
		notifier, err := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, &logger)
		if err != nil {
			logger.Error().Err(err).Msg("create telegram notifier")
		} else {
			notifier.Subscribe(bus)
			logger.Info().Msg("telegram notifications enabled")
		}
	}

	svc := service.NewBookingService(st, schedule.SystemClock{}, bus, gridCache, &logger)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: api.NewServer(svc, &logger).Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Monitoring.PrometheusEnabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			addr := fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort)
			logger.Info().Str("addr", addr).Msg("metrics server listening")
			if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server")
			}
		}()
	}

	go func() {
		logger.Info().Str("addr", cfg.Server.Address).Msg("fairway server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
}
