package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zennstats/zennstats/internal/domain"
)

func TestRankSortsByLikesDescending(t *testing.T) {
	entries := Rank([]domain.UserAggregate{
		{Username: "alice", TotalLikes: 15, Articles: 2},
		{Username: "bob", TotalLikes: 20, Articles: 1},
	}, 100)

	require.Len(t, entries, 2)
	assert.Equal(t, domain.RankingEntry{Rank: 1, Username: "bob", TotalLikes: 20, Articles: 1}, entries[0])
	assert.Equal(t, domain.RankingEntry{Rank: 2, Username: "alice", TotalLikes: 15, Articles: 2}, entries[1])
}

func TestRankTieBreaksOnArticlesThenUsername(t *testing.T) {
	entries := Rank([]domain.UserAggregate{
		{Username: "carol", TotalLikes: 10, Articles: 1},
		{Username: "alice", TotalLikes: 10, Articles: 3},
		{Username: "bob", TotalLikes: 10, Articles: 1},
	}, 100)

	require.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].Username) // more articles wins the tie
	assert.Equal(t, "bob", entries[1].Username)   // then username ascending
	assert.Equal(t, "carol", entries[2].Username)
}

func TestRankTruncatesToTopN(t *testing.T) {
	aggs := []domain.UserAggregate{
		{Username: "a", TotalLikes: 3},
		{Username: "b", TotalLikes: 2},
		{Username: "c", TotalLikes: 1},
	}
	entries := Rank(aggs, 2)

	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Username)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestRankKeepsZeroLikeUsers(t *testing.T) {
	entries := Rank([]domain.UserAggregate{
		{Username: "quiet"},
		{Username: "loud", TotalLikes: 1, Articles: 1},
	}, 100)

	require.Len(t, entries, 2)
	assert.Equal(t, "quiet", entries[1].Username)
	assert.Equal(t, 0, entries[1].TotalLikes)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, 100))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	aggs := []domain.UserAggregate{
		{Username: "alice", TotalLikes: 1},
		{Username: "bob", TotalLikes: 2},
	}
	Rank(aggs, 100)
	assert.Equal(t, "alice", aggs[0].Username)
}
