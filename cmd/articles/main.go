package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zennstats/zennstats/internal/config"
	"github.com/zennstats/zennstats/internal/domain"
	"github.com/zennstats/zennstats/internal/ingest"
	"github.com/zennstats/zennstats/internal/listing"
	"github.com/zennstats/zennstats/internal/logging"
	"github.com/zennstats/zennstats/internal/storage"
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
		logger.Error("article export failed", "error", err)
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
	}

	client := zenn.NewClient(cfg.API)
	walker := listing.NewWalker(client, logger.With("component", "listing"))

	var all []domain.ArticleSummary
	for _, u := range urls {
		articles, err := walker.Articles(ctx, u)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			// keep the rows gathered before the failing page
			logger.Warn("listing walk stopped early", "url", u, "rows", len(articles), "error", err)
		}
		all = append(all, articles...)
		logger.Info("listing collected", "url", u, "articles", len(articles))
	}

	if err := storage.WriteArticles(cfg.Articles.OutputPath, all); err != nil {
		return err
	}
	logger.Info("articles written", "path", cfg.Articles.OutputPath, "rows", len(all))
	return nil
}
