package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ramadhan-masjid-bot/internal/bot"
	"ramadhan-masjid-bot/internal/config"
	"ramadhan-masjid-bot/internal/db"
	"ramadhan-masjid-bot/internal/i18n"
	"ramadhan-masjid-bot/internal/logger"
	"ramadhan-masjid-bot/internal/metrics"

	"go.uber.org/zap"
)

func main() {
	cfg, dotenv, err := config.Load()
	if err != nil {
		// logger belum ada karena level & path berasal dari config
		zap.NewExample().Fatal("Invalid configuration", zap.Error(err))
	}

	log := logger.New(cfg)
	defer log.Sync()

	log.Info("Starting bot...", zap.Bool("dotenv", dotenv), zap.String("timezone", cfg.Location.String()))

	localizer, err := i18n.New(os.DirFS("locales"))
	if err != nil {
		log.Fatal("Failed to load locales", zap.Error(err))
	}

	dbClient := db.NewClient(cfg, log)

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go m.Serve(cfg.MetricsAddr, cfg.MetricsUser, cfg.MetricsPass, log)
	}

	b, err := bot.New(cfg, localizer, dbClient, log, m)
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b.Start(ctx)
	log.Info("Bot stopped")
}
