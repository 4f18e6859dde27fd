package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pricewatcher/config"
	"pricewatcher/internal/extractor"
	"pricewatcher/logger"
	"pricewatcher/services/notify"
	"pricewatcher/services/publisher"
	"pricewatcher/services/worker"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration; this is the only error class
	// that exits non-zero
	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Int("product_count", len(cfg.Products)).
		Dur("fetch_timeout", cfg.FetchTimeout).
		Msg("Starting price check")

	// Set up context with cancellation on shutdown signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	// Challenge-solving client for platforms that block plain clients
	browser := extractor.NewBrowser(cfg.ChromeHeadless)
	defer browser.Close()

	ext := extractor.NewDefault(cfg.FetchTimeout, browser)

	notifiers := []notify.Notifier{
		notify.NewEmailNotifier(cfg.Email),
		notify.NewTelegramNotifier(cfg.Telegram),
	}

	var feed publisher.Publisher
	if cfg.Redis.Addr != "" {
		redisFeed := publisher.NewRedisPublisher(cfg.Redis)
		defer redisFeed.Close()
		feed = redisFeed

		log.Info().
			Str("redis", cfg.Redis.Addr).
			Str("stream", cfg.Redis.Stream).
			Msg("Deal feed enabled")
	}

	// One complete pass, then exit; scheduling repeated runs belongs
	// to cron or a timer unit
	runner := worker.NewRunner(cfg, ext, notifiers, feed)
	deals := runner.Run(ctx)

	log.Info().Int("deal_count", len(deals)).Msg("Run complete")
}
