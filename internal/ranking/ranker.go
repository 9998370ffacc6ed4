package ranking

import (
	"sort"

	"github.com/zennstats/zennstats/internal/domain"
)

// Rank orders aggregates by total likes descending and truncates to topN.
// Ties break on article count descending, then username ascending, so the
// same input always produces the same output bytes.
func Rank(aggregates []domain.UserAggregate, topN int) []domain.RankingEntry {
	sorted := make([]domain.UserAggregate, len(aggregates))
	copy(sorted, aggregates)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TotalLikes != sorted[j].TotalLikes {
			return sorted[i].TotalLikes > sorted[j].TotalLikes
		}
		if sorted[i].Articles != sorted[j].Articles {
			return sorted[i].Articles > sorted[j].Articles
		}
		return sorted[i].Username < sorted[j].Username
	})

	if topN > 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}

	entries := make([]domain.RankingEntry, len(sorted))
	for i, agg := range sorted {
		entries[i] = domain.RankingEntry{
			Rank:       i + 1,
			Username:   agg.Username,
			TotalLikes: agg.TotalLikes,
			Articles:   agg.Articles,
		}
	}
	return entries
}
