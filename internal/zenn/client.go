package zenn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/zennstats/zennstats/internal/config"
	"github.com/zennstats/zennstats/internal/domain"
)

// DefaultBaseURL is the public Zenn API root.
const DefaultBaseURL = "https://zenn.dev/api"

var (
	// ErrStatus reports a non-2xx response from the API.
	ErrStatus = errors.New("unexpected response status")
	// ErrDecode reports a response body that is not the expected JSON shape.
	ErrDecode = errors.New("malformed response body")
)

// Client talks to the Zenn JSON API. Listing pages and user lookups are
// paced by separate token buckets so a worker pool cannot outrun the API.
type Client struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	listLimiter *rate.Limiter
	userLimiter *rate.Limiter
}

var _ domain.TrendingSource = (*Client)(nil)
var _ domain.ListingSource = (*Client)(nil)
var _ domain.UserArticleSource = (*Client)(nil)
var _ domain.UserProfileSource = (*Client)(nil)

// NewClient builds a client from configuration, falling back to the public
// API root and the default pacing when fields are unset.
func NewClient(cfg config.APIConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   cfg.UserAgent,
		httpClient:  &http.Client{Timeout: timeout},
		listLimiter: newLimiter(cfg.ListEvery, 300*time.Millisecond),
		userLimiter: newLimiter(cfg.UserEvery, 100*time.Millisecond),
	}
}

func newLimiter(every, fallback time.Duration) *rate.Limiter {
	if every <= 0 {
		every = fallback
	}
	return rate.NewLimiter(rate.Every(every), 1)
}

// Trending returns one page of the liked-ordered article listing.
func (c *Client) Trending(ctx context.Context, page int) (domain.ArticlePage, error) {
	return c.Listing(ctx, c.baseURL+"/articles?order=liked", page)
}

// UserArticles returns one page of the articles published by username.
func (c *Client) UserArticles(ctx context.Context, username string, page int) (domain.ArticlePage, error) {
	listing := fmt.Sprintf("%s/articles?username=%s&order=latest", c.baseURL, url.QueryEscape(username))
	return c.Listing(ctx, listing, page)
}

// Listing fetches one page of an arbitrary article listing URL, setting the
// page query parameter on the way out.
func (c *Client) Listing(ctx context.Context, rawURL string, page int) (domain.ArticlePage, error) {
	pageURL, err := buildPageURL(rawURL, page)
	if err != nil {
		return domain.ArticlePage{}, err
	}

	if err := c.listLimiter.Wait(ctx); err != nil {
		return domain.ArticlePage{}, err
	}

	var payload articleListResponse
	if err := c.getJSON(ctx, pageURL, &payload); err != nil {
		return domain.ArticlePage{}, err
	}

	return toArticlePage(payload), nil
}

// User reads a user's precomputed totals from the profile endpoint.
func (c *Client) User(ctx context.Context, username string) (domain.UserAggregate, error) {
	if err := c.userLimiter.Wait(ctx); err != nil {
		return domain.UserAggregate{}, err
	}

	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	var payload userResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return domain.UserAggregate{}, err
	}

	agg := domain.UserAggregate{
		Username:   payload.User.Username,
		TotalLikes: payload.User.TotalLikedCount,
		Articles:   payload.User.ArticlesCount,
	}
	if agg.Username == "" {
		agg.Username = username
	}
	return agg, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d for %s", ErrStatus, resp.StatusCode, rawURL)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func buildPageURL(base string, page int) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid listing url %s: %w", base, err)
	}
	if !parsed.IsAbs() {
		return "", fmt.Errorf("listing url %s is not absolute", base)
	}

	query := parsed.Query()
	query.Set("page", strconv.Itoa(page))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func toArticlePage(payload articleListResponse) domain.ArticlePage {
	page := domain.ArticlePage{
		Articles: make([]domain.ArticleSummary, 0, len(payload.Articles)),
	}
	for _, item := range payload.Articles {
		summary := domain.ArticleSummary{
			Title:     item.Title,
			LikeCount: item.LikedCount,
		}
		if item.User != nil {
			summary.Username = item.User.Username
		}
		if item.Publication != nil {
			summary.Publication = item.Publication.DisplayName
		}
		page.Articles = append(page.Articles, summary)
	}
	if payload.NextPage != nil {
		page.NextPage = *payload.NextPage
	}
	return page
}
