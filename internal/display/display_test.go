package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zennstats/zennstats/internal/domain"
)

func TestRankingTable(t *testing.T) {
	var buf bytes.Buffer
	Ranking(&buf, []domain.RankingEntry{
		{Rank: 1, Username: "bob", TotalLikes: 20, Articles: 4},
		{Rank: 2, Username: "alice", TotalLikes: 15, Articles: 2},
	}, 30)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "username")
	assert.Contains(t, lines[1], "bob")
	assert.Contains(t, lines[1], "5.0") // 20 likes over 4 articles
	assert.Contains(t, lines[2], "7.5")
}

func TestRankingTruncatesToTop(t *testing.T) {
	var buf bytes.Buffer
	Ranking(&buf, []domain.RankingEntry{
		{Rank: 1, Username: "a", TotalLikes: 3, Articles: 1},
		{Rank: 2, Username: "b", TotalLikes: 2, Articles: 1},
		{Rank: 3, Username: "c", TotalLikes: 1, Articles: 1},
	}, 2)

	assert.NotContains(t, buf.String(), "c ")
	assert.Contains(t, buf.String(), "b ")
}

func TestRankingZeroArticlesDoesNotDivide(t *testing.T) {
	var buf bytes.Buffer
	Ranking(&buf, []domain.RankingEntry{{Rank: 1, Username: "quiet"}}, 30)

	assert.Contains(t, buf.String(), "0.0")
}

func TestRankingEmpty(t *testing.T) {
	var buf bytes.Buffer
	Ranking(&buf, nil, 30)
	assert.Contains(t, buf.String(), "no users ranked")
}

func TestSummaryBlock(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, RunSummary{
		UsersDiscovered: 12,
		UsersAggregated: 12,
		TotalLikes:      340,
		TotalArticles:   57,
		RankingSize:     10,
		OutputPath:      "out.csv",
	})

	out := buf.String()
	assert.Contains(t, out, "users discovered:  12")
	assert.Contains(t, out, "total likes:       340")
	assert.Contains(t, out, "out.csv")
}

func TestListingRows(t *testing.T) {
	var buf bytes.Buffer
	ListingHeader(&buf)
	ListingRow(&buf, domain.ListingStats{Name: "Team Blog", Articles: 8, TotalLikes: 99})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "articles")
	assert.Contains(t, lines[1], "Team Blog")
	assert.Contains(t, lines[1], "99")
}
