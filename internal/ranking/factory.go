package ranking

import (
	"fmt"

	"github.com/zennstats/zennstats/internal/domain"
	"github.com/zennstats/zennstats/internal/zenn"
)

// Sources bundles the discovery and aggregation backends for one run.
type Sources struct {
	Trending domain.TrendingSource
	Stats    domain.StatsSource
}

// NewSources selects the backends for the configured aggregator mode.
// "articles" walks each user's own listing, "profile" reads the precomputed
// totals from the user endpoint, and "mock" runs fully offline.
func NewSources(mode string, client *zenn.Client) (Sources, error) {
	switch mode {
	case "", "articles":
		return Sources{Trending: client, Stats: NewArticleSumSource(client)}, nil
	case "profile":
		return Sources{Trending: client, Stats: NewProfileSource(client)}, nil
	case "mock":
		mock := NewMockSource()
		return Sources{Trending: mock, Stats: mock}, nil
	default:
		return Sources{}, fmt.Errorf("unknown aggregator mode: %s (use 'articles', 'profile', or 'mock')", mode)
	}
}
