package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/zennstats/zennstats/internal/domain"
)

var rankingHeader = []string{"rank", "username", "total_likes"}

var articlesHeader = []string{"title", "publication", "username", "like_count"}

// WriteRanking writes the ranking CSV, truncating any existing file at path.
// An empty ranking still produces the header row.
func WriteRanking(path string, entries []domain.RankingEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Rank),
			e.Username,
			strconv.Itoa(e.TotalLikes),
		})
	}
	return writeCSV(path, rankingHeader, rows)
}

// WriteArticles writes one row per article, truncating any existing file.
// The publication column is empty for articles outside a publication.
func WriteArticles(path string, articles []domain.ArticleSummary) error {
	rows := make([][]string, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []string{
			a.Title,
			a.Publication,
			a.Username,
			strconv.Itoa(a.LikeCount),
		})
	}
	return writeCSV(path, articlesHeader, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
