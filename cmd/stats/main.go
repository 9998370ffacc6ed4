package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zennstats/zennstats/internal/config"
	"github.com/zennstats/zennstats/internal/display"
	"github.com/zennstats/zennstats/internal/ingest"
	"github.com/zennstats/zennstats/internal/listing"
	"github.com/zennstats/zennstats/internal/logging"
	"github.com/zennstats/zennstats/internal/zenn"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutdown signal received")
		cancel()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("stats run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	urls, err := ingest.LoadURLs(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("read url list %s: %w", cfg.Input.Path, err)
	}
	if len(urls) == 0 {
		logger.Warn("url list has no usable rows", "path", cfg.Input.Path)
		return nil
	}

	client := zenn.NewClient(cfg.API)
	walker := listing.NewWalker(client, logger.With("component", "listing"))

	display.ListingHeader(os.Stdout)
	for _, u := range urls {
		stats, err := walker.Stats(ctx, u)
		if err != nil {
			return err
		}
		display.ListingRow(os.Stdout, stats)
	}
	return nil
}
