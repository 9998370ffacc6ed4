package ranking

import (
	"context"
	"fmt"

	"github.com/zennstats/zennstats/internal/domain"
)

// ArticleSumSource implements domain.StatsSource by walking a user's own
// article listing and summing per-article like counts.
type ArticleSumSource struct {
	client domain.UserArticleSource
}

var _ domain.StatsSource = (*ArticleSumSource)(nil)

// NewArticleSumSource aggregates through the per-user article listing.
func NewArticleSumSource(client domain.UserArticleSource) *ArticleSumSource {
	return &ArticleSumSource{client: client}
}

// UserStats pages username's articles until the API signals the end, folding
// every like count into the aggregate. A user with no articles aggregates to
// zero and is still reported.
func (s *ArticleSumSource) UserStats(ctx context.Context, username string) (domain.UserAggregate, error) {
	agg := domain.UserAggregate{Username: username}

	page := 1
	for {
		res, err := s.client.UserArticles(ctx, username, page)
		if err != nil {
			return domain.UserAggregate{}, fmt.Errorf("articles of %s: %w", username, err)
		}

		for _, article := range res.Articles {
			agg.TotalLikes += article.LikeCount
			agg.Articles++
		}

		if len(res.Articles) == 0 || res.NextPage <= 0 {
			return agg, nil
		}
		page = res.NextPage
	}
}

// ProfileSource implements domain.StatsSource with a single call to the user
// profile endpoint, which carries the same totals precomputed server-side.
type ProfileSource struct {
	client domain.UserProfileSource
}

var _ domain.StatsSource = (*ProfileSource)(nil)

// NewProfileSource aggregates through the profile endpoint.
func NewProfileSource(client domain.UserProfileSource) *ProfileSource {
	return &ProfileSource{client: client}
}

func (s *ProfileSource) UserStats(ctx context.Context, username string) (domain.UserAggregate, error) {
	agg, err := s.client.User(ctx, username)
	if err != nil {
		return domain.UserAggregate{}, fmt.Errorf("profile of %s: %w", username, err)
	}
	return agg, nil
}
