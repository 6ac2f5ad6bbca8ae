package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client fetches "1 unit of X in home currency" rates from an
// open.er-api.com compatible endpoint.
type Client struct {
	baseURL string
	home    string
	http    *http.Client
	limiter *rate.Limiter
	cache   *rateCache
	logger  *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock replaces time.Now for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.cache.now = now }
}

// WithLimiter replaces the outbound request limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// NewClient constructs a Client. baseURL is the endpoint prefix; the source
// currency code is appended as the last path segment.
func NewClient(baseURL, home string, ttl time.Duration, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		home:    NormalizeCode(home),
		http:    &http.Client{Timeout: 5 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
		cache:   newRateCache(ttl, time.Now),
		logger:  logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// HomeCurrency returns the ISO code amounts are converted into.
func (c *Client) HomeCurrency() string {
	return c.home
}

// latestResponse is the subset of the provider payload we read.
type latestResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// Rate returns how many home-currency units one unit of from is worth.
// Any failure reports false; the caller shows the amount unconverted.
func (c *Client) Rate(ctx context.Context, from string) (float64, bool) {
	code := NormalizeCode(from)
	if code == "" {
		return 0, false
	}
	if code == c.home {
		return 1, true
	}
	if r, ok := c.cache.get(code); ok {
		return r, true
	}
	if !c.limiter.Allow() {
		c.logger.WarnContext(ctx, "exchange rate lookup rate-limited", "currency", code)
		return 0, false
	}

	r, err := c.fetch(ctx, code)
	if err != nil {
		c.logger.WarnContext(ctx, "exchange rate unavailable", "currency", code, "error", err)
		return 0, false
	}
	c.cache.put(code, r)
	return r, true
}

func (c *Client) fetch(ctx context.Context, code string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+code, nil)
	if err != nil {
		return 0, fmt.Errorf("currency.Client.fetch: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("currency.Client.fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("currency.Client.fetch: unexpected status %d", resp.StatusCode)
	}
	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("currency.Client.fetch: decode: %w", err)
	}
	if body.Result != "success" {
		return 0, fmt.Errorf("currency.Client.fetch: result %q", body.Result)
	}
	r, ok := body.Rates[c.home]
	if !ok || r == 0 {
		return 0, fmt.Errorf("currency.Client.fetch: no %s rate", c.home)
	}
	return r, nil
}
