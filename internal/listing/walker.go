package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zennstats/zennstats/internal/domain"
)

// Walker pages arbitrary article listing URLs from the input file.
type Walker struct {
	source domain.ListingSource
	logger *slog.Logger
}

func NewWalker(source domain.ListingSource, logger *slog.Logger) *Walker {
	return &Walker{source: source, logger: logger}
}

// Articles collects every article in the listing at rawURL. A fetch failure
// mid-listing stops the walk but keeps the rows gathered so far; the caller
// gets both the partial slice and the error.
func (w *Walker) Articles(ctx context.Context, rawURL string) ([]domain.ArticleSummary, error) {
	var collected []domain.ArticleSummary

	page := 1
	for {
		res, err := w.source.Listing(ctx, rawURL, page)
		if err != nil {
			return collected, fmt.Errorf("listing %s page %d: %w", rawURL, page, err)
		}
		w.logger.Debug("listing page fetched", "url", rawURL, "page", page, "articles", len(res.Articles))

		collected = append(collected, res.Articles...)

		if len(res.Articles) == 0 || res.NextPage <= 0 {
			return collected, nil
		}
		page = res.NextPage
	}
}

// Stats walks the listing at rawURL and totals its articles and likes. The
// display name comes from the first article of the last non-empty page: its
// publication name when present, otherwise its author username.
func (w *Walker) Stats(ctx context.Context, rawURL string) (domain.ListingStats, error) {
	stats := domain.ListingStats{URL: rawURL}

	page := 1
	for {
		res, err := w.source.Listing(ctx, rawURL, page)
		if err != nil {
			return domain.ListingStats{}, fmt.Errorf("listing %s page %d: %w", rawURL, page, err)
		}

		for _, article := range res.Articles {
			stats.Articles++
			stats.TotalLikes += article.LikeCount
		}
		if len(res.Articles) > 0 {
			first := res.Articles[0]
			if first.Publication != "" {
				stats.Name = first.Publication
			} else {
				stats.Name = first.Username
			}
		}

		if len(res.Articles) == 0 || res.NextPage <= 0 {
			return stats, nil
		}
		page = res.NextPage
	}
}
