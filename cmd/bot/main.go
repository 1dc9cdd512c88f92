package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanRulev/lingobot.git/internal/bot"
	"github.com/DanRulev/lingobot.git/internal/client"
	"github.com/DanRulev/lingobot.git/internal/config"
	"github.com/DanRulev/lingobot.git/internal/metrics"
	"github.com/DanRulev/lingobot.git/internal/repository"
	"github.com/DanRulev/lingobot.git/internal/server"
	"github.com/DanRulev/lingobot.git/internal/service"
	"github.com/DanRulev/lingobot.git/internal/storage/cache"
	"github.com/DanRulev/lingobot.git/internal/storage/db"
	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func setupCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) (bot.CacheI, func(), error) {
	if cfg.Driver != "redis" {
		logger.Info("using in-memory dialog cache")
		return cache.NewCache(), func() {}, nil
	}

	rc, err := cache.NewRedisCache(ctx, cfg.Redis, cfg.TTL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using redis dialog cache", zap.String("addr", cfg.Redis.Addr))
	return rc, func() { _ = rc.Close() }, nil
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer db.Close()

	dialogs, closeCache, err := setupCache(ctx, cfg.Cache, logger)
	if err != nil {
		logger.Fatal("failed init cache", zap.Error(err))
	}
	defer closeCache()

	metrics.MustRegister(prometheus.DefaultRegisterer)

	repos := repository.NewRepository(db)
	clients := client.InitClients(cfg.Translate.Timeout, cfg.Translate.Email)
	services := service.InitServices(clients, repos, service.ReviewOptions{
		DecayDays:             cfg.Review.DecayDays,
		MaxDistractorAttempts: cfg.Review.MaxDistractorAttempts,
	}, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, bot.Options{
		Env:     cfg.Env,
		Timeout: cfg.App.Timeout,
		IsAdmin: cfg.IsAdmin,
	}, services, dialogs, logger)
	if err != nil {
		logger.Fatal("failed init telegram bot", zap.Error(err))
	}

	srv := server.New(cfg.App.HTTPAddr, db, prometheus.DefaultGatherer, logger)
	go srv.Start()

	handler.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to stop http server", zap.Error(err))
	}
	logger.Info("bot stopped")
}
