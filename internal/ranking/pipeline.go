package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/zennstats/zennstats/internal/domain"
)

// Options bounds the discovery walk and the aggregation fan-out.
type Options struct {
	MaxPages int
	Workers  int
}

// Pipeline runs the discover -> aggregate steps of a ranking run.
// Discovery is sequential; aggregation fans out over a worker pool.
type Pipeline struct {
	trending domain.TrendingSource
	stats    domain.StatsSource
	logger   *slog.Logger
	opts     Options
}

func NewPipeline(trending domain.TrendingSource, stats domain.StatsSource, logger *slog.Logger, opts Options) *Pipeline {
	if opts.MaxPages <= 0 {
		opts.MaxPages = 50
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Pipeline{trending: trending, stats: stats, logger: logger, opts: opts}
}

// Discover walks the liked-ordered listing and collects the distinct
// usernames seen on it. Any fetch failure aborts the whole walk; an empty
// first page is not an error and yields an empty set.
func (p *Pipeline) Discover(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var users []string

	page := 1
	for fetched := 0; fetched < p.opts.MaxPages; fetched++ {
		res, err := p.trending.Trending(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("trending page %d: %w", page, err)
		}
		p.logger.Debug("trending page fetched", "page", page, "articles", len(res.Articles))

		for _, article := range res.Articles {
			if article.Username == "" {
				p.logger.Warn("article without username skipped", "title", article.Title)
				continue
			}
			if _, ok := seen[article.Username]; ok {
				continue
			}
			seen[article.Username] = struct{}{}
			users = append(users, article.Username)
		}

		if len(res.Articles) == 0 || res.NextPage <= 0 {
			break
		}
		page = res.NextPage
	}

	return users, nil
}

// Aggregate resolves the like totals of every discovered user. A failure for
// one user is logged and that user is counted with zero likes; the run keeps
// going. Only context cancellation aborts the whole step.
func (p *Pipeline) Aggregate(ctx context.Context, users []string) ([]domain.UserAggregate, error) {
	jobs := make(chan string, len(users))
	results := make(chan domain.UserAggregate, len(users))

	var wg sync.WaitGroup
	for i := 0; i < p.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for username := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				agg, err := p.stats.UserStats(ctx, username)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					p.logger.Warn("user aggregation failed, counting zero", "user", username, "error", err)
					agg = domain.UserAggregate{Username: username}
				}
				results <- agg
			}
		}()
	}

	for _, username := range users {
		jobs <- username
	}
	close(jobs)

	wg.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	aggregates := make([]domain.UserAggregate, 0, len(users))
	for agg := range results {
		aggregates = append(aggregates, agg)
	}
	return aggregates, nil
}
