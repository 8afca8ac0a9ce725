package wallhaven

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dixieflatline76/wallhavener/util/log"
	"golang.org/x/time/rate"
)

// Query holds the search filters. Categories and Purity are three character "0"/"1" masks.
type Query struct {
	APIKey      string
	Q           string
	Categories  string
	Purity      string
	Resolutions string
	Ratios      string
	Sorting     string
	Order       string
	TopRange    string
}

// Values encodes the query for the given page.
func (q Query) Values(page int) url.Values {
	v := url.Values{}
	v.Set("q", q.Q)
	v.Set("categories", q.Categories)
	v.Set("purity", q.Purity)
	v.Set("resolutions", q.Resolutions)
	v.Set("atleast", q.Resolutions)
	v.Set("ratios", q.Ratios)
	v.Set("sorting", q.Sorting)
	v.Set("order", q.Order)
	v.Set("page", strconv.Itoa(page))
	v.Set("per_page", strconv.Itoa(PerPage))
	if q.Sorting == sortToplist {
		v.Set("topRange", q.TopRange)
	}
	return v
}

// Client searches wallhaven.cc.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	page       func() int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLimiter replaces the default request limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithPageFunc replaces the random page picker.
func WithPageFunc(f func() int) Option {
	return func(c *Client) { c.page = f }
}

// NewClient creates a search client. A nil httpClient falls back to NewHTTPClient.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), requestBurst),
		page:       RandomPage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RandomPage picks a page in [1, MaxRandomPage] so repeated searches see different results.
func RandomPage() int {
	return rand.IntN(MaxRandomPage) + 1
}

// Search runs a filtered search on a random page and returns its hits. A response without
// results yields an empty slice and no error.
func (c *Client) Search(ctx context.Context, q Query) ([]Wallpaper, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	u, err := url.Parse(c.baseURL + searchPath)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}
	page := c.page()
	u.RawQuery = q.Values(page).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if q.APIKey != "" {
		req.Header.Set(APIKeyHeader, q.APIKey)
	}

	log.Debugf("Searching wallhaven: %s", u.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: u.Redacted(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{URL: u.Redacted(), StatusCode: resp.StatusCode}
	}

	var response searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	if response.Data == nil {
		response.Data = []Wallpaper{}
	}

	log.Printf("wallhaven page %d returned %d results (last page %d)", page, len(response.Data), response.Meta.LastPage)
	return response.Data, nil
}
