package display

import (
	"fmt"
	"io"

	"github.com/zennstats/zennstats/internal/domain"
)

// RunSummary is the closing block printed after a ranking run.
type RunSummary struct {
	UsersDiscovered int
	UsersAggregated int
	TotalLikes      int
	TotalArticles   int
	RankingSize     int
	OutputPath      string
}

// Ranking prints a fixed-width table of the best-ranked entries, at most top
// rows. The average column guards against users with zero articles.
func Ranking(w io.Writer, entries []domain.RankingEntry, top int) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no users ranked")
		return
	}
	if top > 0 && len(entries) > top {
		entries = entries[:top]
	}

	fmt.Fprintf(w, "%4s  %-24s %12s %9s %10s\n", "rank", "username", "total likes", "articles", "avg likes")
	for _, e := range entries {
		avg := 0.0
		if e.Articles > 0 {
			avg = float64(e.TotalLikes) / float64(e.Articles)
		}
		fmt.Fprintf(w, "%4d  %-24s %12d %9d %10.1f\n", e.Rank, e.Username, e.TotalLikes, e.Articles, avg)
	}
}

// Summary prints the run totals after the ranking table.
func Summary(w io.Writer, s RunSummary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "users discovered:  %d\n", s.UsersDiscovered)
	fmt.Fprintf(w, "users aggregated:  %d\n", s.UsersAggregated)
	fmt.Fprintf(w, "total likes:       %d\n", s.TotalLikes)
	fmt.Fprintf(w, "total articles:    %d\n", s.TotalArticles)
	fmt.Fprintf(w, "ranking entries:   %d\n", s.RankingSize)
	fmt.Fprintf(w, "output:            %s\n", s.OutputPath)
}

// ListingHeader prints the column header for the stats tool's table.
func ListingHeader(w io.Writer) {
	fmt.Fprintf(w, "%-32s %9s %12s\n", "name", "articles", "total likes")
}

// ListingRow prints one listing's totals under ListingHeader.
func ListingRow(w io.Writer, s domain.ListingStats) {
	fmt.Fprintf(w, "%-32s %9d %12d\n", s.Name, s.Articles, s.TotalLikes)
}
