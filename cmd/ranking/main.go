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
	"github.com/zennstats/zennstats/internal/logging"
	"github.com/zennstats/zennstats/internal/ranking"
	"github.com/zennstats/zennstats/internal/report"
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
		logger.Error("ranking run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	client := zenn.NewClient(cfg.API)
	sources, err := ranking.NewSources(cfg.Aggregator, client)
	if err != nil {
		return err
	}
	logger.Info("aggregator initialized", "mode", cfg.Aggregator, "workers", cfg.Workers)

	pipe := ranking.NewPipeline(sources.Trending, sources.Stats, logger.With("component", "ranking"), ranking.Options{
		MaxPages: cfg.Discovery.MaxPages,
		Workers:  cfg.Workers,
	})

	users, err := pipe.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover users: %w", err)
	}
	logger.Info("discovery complete", "users", len(users))

	aggregates, err := pipe.Aggregate(ctx, users)
	if err != nil {
		return err
	}

	entries := ranking.Rank(aggregates, cfg.Ranking.TopN)

	if err := storage.WriteRanking(cfg.Ranking.OutputPath, entries); err != nil {
		return err
	}
	logger.Info("ranking written", "path", cfg.Ranking.OutputPath, "entries", len(entries))

	summary := display.RunSummary{
		UsersDiscovered: len(users),
		UsersAggregated: len(aggregates),
		RankingSize:     len(entries),
		OutputPath:      cfg.Ranking.OutputPath,
	}
	for _, agg := range aggregates {
		summary.TotalLikes += agg.TotalLikes
		summary.TotalArticles += agg.Articles
	}

	display.Ranking(os.Stdout, entries, cfg.Display.Top)
	display.Summary(os.Stdout, summary)

	if cfg.Report.Path != "" {
		if err := report.Write(cfg.Report.Path, entries, cfg.Display.Top); err != nil {
			return err
		}
		logger.Info("chart report written", "path", cfg.Report.Path)
	}

	if cfg.Dashboard.Addr != "" {
		logger.Info("serving dashboard", "addr", cfg.Dashboard.Addr)
		return report.Serve(cfg.Dashboard.Addr, cfg.Ranking.OutputPath, cfg.Display.Top)
	}
	return nil
}
