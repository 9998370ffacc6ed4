package ranking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zennstats/zennstats/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTrending struct {
	pages map[int]domain.ArticlePage
	fail  map[int]error
	calls int
}

func (f *fakeTrending) Trending(ctx context.Context, page int) (domain.ArticlePage, error) {
	f.calls++
	if err := f.fail[page]; err != nil {
		return domain.ArticlePage{}, err
	}
	return f.pages[page], nil
}

type fakeStats struct {
	totals map[string]domain.UserAggregate
	fail   map[string]error
}

func (f *fakeStats) UserStats(ctx context.Context, username string) (domain.UserAggregate, error) {
	if err := f.fail[username]; err != nil {
		return domain.UserAggregate{}, err
	}
	if agg, ok := f.totals[username]; ok {
		return agg, nil
	}
	return domain.UserAggregate{Username: username}, nil
}

func article(username string, likes int) domain.ArticleSummary {
	return domain.ArticleSummary{Title: "t", Username: username, LikeCount: likes}
}

func TestDiscoverDeduplicatesAcrossPages(t *testing.T) {
	trending := &fakeTrending{pages: map[int]domain.ArticlePage{
		1: {Articles: []domain.ArticleSummary{article("alice", 10), article("bob", 20)}, NextPage: 2},
		2: {Articles: []domain.ArticleSummary{article("alice", 5), article("carol", 1)}, NextPage: 0},
	}}
	pipe := NewPipeline(trending, &fakeStats{}, discardLogger(), Options{MaxPages: 10, Workers: 1})

	users, err := pipe.Discover(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob", "carol"}, users)
}

func TestDiscoverEmptyFirstPageIsNotAnError(t *testing.T) {
	trending := &fakeTrending{pages: map[int]domain.ArticlePage{1: {}}}
	pipe := NewPipeline(trending, &fakeStats{}, discardLogger(), Options{MaxPages: 10, Workers: 1})

	users, err := pipe.Discover(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDiscoverAbortsOnFetchFailure(t *testing.T) {
	trending := &fakeTrending{
		pages: map[int]domain.ArticlePage{1: {Articles: []domain.ArticleSummary{article("alice", 1)}, NextPage: 2}},
		fail:  map[int]error{2: errors.New("status 500")},
	}
	pipe := NewPipeline(trending, &fakeStats{}, discardLogger(), Options{MaxPages: 10, Workers: 1})

	_, err := pipe.Discover(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "trending page 2")
}

func TestDiscoverHonorsPageCap(t *testing.T) {
	pages := make(map[int]domain.ArticlePage)
	for i := 1; i <= 10; i++ {
		pages[i] = domain.ArticlePage{Articles: []domain.ArticleSummary{article("alice", 1)}, NextPage: i + 1}
	}
	trending := &fakeTrending{pages: pages}
	pipe := NewPipeline(trending, &fakeStats{}, discardLogger(), Options{MaxPages: 3, Workers: 1})

	_, err := pipe.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, trending.calls)
}

func TestDiscoverSkipsArticlesWithoutUsername(t *testing.T) {
	trending := &fakeTrending{pages: map[int]domain.ArticlePage{
		1: {Articles: []domain.ArticleSummary{article("", 9), article("alice", 1)}},
	}}
	pipe := NewPipeline(trending, &fakeStats{}, discardLogger(), Options{MaxPages: 10, Workers: 1})

	users, err := pipe.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, users)
}

func TestAggregateCollectsEveryUser(t *testing.T) {
	stats := &fakeStats{totals: map[string]domain.UserAggregate{
		"alice": {Username: "alice", TotalLikes: 15, Articles: 2},
		"bob":   {Username: "bob", TotalLikes: 20, Articles: 1},
	}}
	pipe := NewPipeline(&fakeTrending{}, stats, discardLogger(), Options{MaxPages: 1, Workers: 4})

	aggs, err := pipe.Aggregate(context.Background(), []string{"alice", "bob", "carol"})
	require.NoError(t, err)
	require.Len(t, aggs, 3)

	sort.Slice(aggs, func(i, j int) bool { return aggs[i].Username < aggs[j].Username })
	assert.Equal(t, domain.UserAggregate{Username: "alice", TotalLikes: 15, Articles: 2}, aggs[0])
	assert.Equal(t, domain.UserAggregate{Username: "bob", TotalLikes: 20, Articles: 1}, aggs[1])
	assert.Equal(t, domain.UserAggregate{Username: "carol"}, aggs[2])
}

func TestAggregateFailedUserCountsZeroAndRunContinues(t *testing.T) {
	stats := &fakeStats{
		totals: map[string]domain.UserAggregate{"bob": {Username: "bob", TotalLikes: 20, Articles: 1}},
		fail:   map[string]error{"alice": errors.New("status 404")},
	}
	pipe := NewPipeline(&fakeTrending{}, stats, discardLogger(), Options{MaxPages: 1, Workers: 2})

	aggs, err := pipe.Aggregate(context.Background(), []string{"alice", "bob"})
	require.NoError(t, err)
	require.Len(t, aggs, 2)

	sort.Slice(aggs, func(i, j int) bool { return aggs[i].Username < aggs[j].Username })
	assert.Equal(t, domain.UserAggregate{Username: "alice"}, aggs[0])
	assert.Equal(t, 20, aggs[1].TotalLikes)
}

func TestAggregateStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pipe := NewPipeline(&fakeTrending{}, &fakeStats{}, discardLogger(), Options{MaxPages: 1, Workers: 2})
	_, err := pipe.Aggregate(ctx, []string{"alice", "bob"})
	require.ErrorIs(t, err, context.Canceled)
}
