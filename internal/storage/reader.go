package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/zennstats/zennstats/internal/domain"
)

// ReadRanking loads a ranking CSV written by WriteRanking, for the dashboard
// to chart. Malformed rows are skipped. The article count is not stored in
// the file, so entries come back with Articles zero.
func ReadRanking(path string) ([]domain.RankingEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []domain.RankingEntry
	for i, record := range records {
		if i == 0 || len(record) < 3 {
			continue
		}
		rank, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		likes, err := strconv.Atoi(record[2])
		if err != nil {
			continue
		}
		entries = append(entries, domain.RankingEntry{
			Rank:       rank,
			Username:   record[1],
			TotalLikes: likes,
		})
	}
	return entries, nil
}
