package ranking

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/zennstats/zennstats/internal/domain"
)

// MockSource serves synthetic trending pages and user totals without any
// network calls. Totals are derived from the username, so repeated runs rank
// identically.
type MockSource struct{}

var _ domain.TrendingSource = (*MockSource)(nil)
var _ domain.StatsSource = (*MockSource)(nil)

func NewMockSource() *MockSource {
	return &MockSource{}
}

// Trending returns a single fixed page of simulated articles.
func (m *MockSource) Trending(ctx context.Context, page int) (domain.ArticlePage, error) {
	if page != 1 {
		return domain.ArticlePage{}, nil
	}

	result := domain.ArticlePage{}
	for i := 0; i < 12; i++ {
		username := fmt.Sprintf("mock_user_%02d", i)
		result.Articles = append(result.Articles, domain.ArticleSummary{
			Title:     fmt.Sprintf("Simulated trending article #%d", i),
			Username:  username,
			LikeCount: int(hashOf(username) % 300),
		})
	}
	return result, nil
}

// UserStats fabricates per-user totals from a hash of the username.
func (m *MockSource) UserStats(ctx context.Context, username string) (domain.UserAggregate, error) {
	sum := hashOf(username)

	agg := domain.UserAggregate{Username: username}
	agg.Articles = int(sum % 37)
	if agg.Articles > 0 {
		agg.TotalLikes = int(sum%991) + agg.Articles
	}
	return agg, nil
}

func hashOf(username string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(username))
	return h.Sum32()
}
