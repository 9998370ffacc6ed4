package domain

import "context"

// ArticleSummary is one article as it appears on a listing page.
type ArticleSummary struct {
	Title       string
	Publication string // empty when the article belongs to no publication
	Username    string
	LikeCount   int
}

// ArticlePage is a single listing page plus its pagination marker.
// NextPage <= 0 means the listing is exhausted.
type ArticlePage struct {
	Articles []ArticleSummary
	NextPage int
}

// UserAggregate accumulates the like total for one user.
type UserAggregate struct {
	Username   string
	TotalLikes int
	Articles   int
}

// RankingEntry is one finalized row of the like-count ranking.
type RankingEntry struct {
	Rank       int
	Username   string
	TotalLikes int
	Articles   int
}

// ListingStats summarizes one listing URL from the input file.
type ListingStats struct {
	Name       string
	URL        string
	Articles   int
	TotalLikes int
}

// TrendingSource pages the platform's liked-ordered article listing.
type TrendingSource interface {
	Trending(ctx context.Context, page int) (ArticlePage, error)
}

// ListingSource pages an arbitrary article listing URL from the input file.
type ListingSource interface {
	Listing(ctx context.Context, rawURL string, page int) (ArticlePage, error)
}

// UserArticleSource pages the articles published by one user.
type UserArticleSource interface {
	UserArticles(ctx context.Context, username string, page int) (ArticlePage, error)
}

// UserProfileSource reads a user's precomputed totals from the profile endpoint.
type UserProfileSource interface {
	User(ctx context.Context, username string) (UserAggregate, error)
}

// StatsSource resolves the like totals for a single user.
type StatsSource interface {
	UserStats(ctx context.Context, username string) (UserAggregate, error)
}
