package report

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/zennstats/zennstats/internal/domain"
	"github.com/zennstats/zennstats/internal/storage"
)

// Write renders a bar chart of the best-ranked users (at most top of them)
// into a standalone HTML file at path.
func Write(path string, entries []domain.RankingEntry, top int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer f.Close()

	if err := likesBar(entries, top).Render(f); err != nil {
		return fmt.Errorf("render report %s: %w", path, err)
	}
	return nil
}

// Serve exposes the ranking charts over HTTP, reading the ranking back from
// the CSV file on every request so the page reflects the file on disk.
func Serve(addr, csvPath string, top int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		entries, err := storage.ReadRanking(csvPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		likesBar(entries, top).Render(w)
		likesPie(entries, top).Render(w)
	})
	return http.ListenAndServe(addr, mux)
}

func likesBar(entries []domain.RankingEntry, top int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Zenn like-count ranking"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	var names []string
	var likes []opts.BarData
	for _, e := range capEntries(entries, top) {
		names = append(names, e.Username)
		likes = append(likes, opts.BarData{Value: e.TotalLikes})
	}
	bar.SetXAxis(names).AddSeries("total likes", likes)
	return bar
}

func likesPie(entries []domain.RankingEntry, top int) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Like share among ranked users"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	var items []opts.PieData
	for _, e := range capEntries(entries, top) {
		items = append(items, opts.PieData{Name: e.Username, Value: e.TotalLikes})
	}
	pie.AddSeries("likes", items)
	return pie
}

func capEntries(entries []domain.RankingEntry, top int) []domain.RankingEntry {
	if top > 0 && len(entries) > top {
		return entries[:top]
	}
	return entries
}
