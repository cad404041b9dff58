// Package provider fetches booking snapshots from the upstream
// reservations API.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"floorline/internal/model"
)

// Provider is any source of booking snapshots. The store depends on this
// interface rather than the HTTP client.
type Provider interface {
	FetchSnapshot(ctx context.Context) (*model.BookingSnapshot, error)
}

// FetchError reports an unreachable upstream or a non-success status.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch snapshot: %v", e.Err)
	}
	return fmt.Sprintf("fetch snapshot: http %d", e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client is an HTTP client for the reservations API with optional Redis
// caching of the snapshot payload.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	redis    *redis.Client
	cacheTTL time.Duration
	limiter  *rate.Limiter
}

// NewClient constructs a client for the given base URL and optional API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// UseRedisCache configures Redis caching of fetched snapshots.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// LimitRefresh bounds how often the upstream is hit: at most one fetch per
// minInterval, extra calls wait. Cached reads are not limited.
func (c *Client) LimitRefresh(minInterval time.Duration) {
	if minInterval <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Every(minInterval), 1)
}

const snapshotCacheKey = "floorline:snapshot"

// FetchSnapshot fetches the booking snapshot for the visible date range.
func (c *Client) FetchSnapshot(ctx context.Context) (*model.BookingSnapshot, error) {
	var snap model.BookingSnapshot
	if c.readCache(ctx, snapshotCacheKey, &snap) {
		return &snap, nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &FetchError{Err: err}
		}
	}

	endpoint := fmt.Sprintf("%s/api/v1/reservations", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode payload: %w", err)}
	}

	c.writeCache(ctx, snapshotCacheKey, snap)
	return &snap, nil
}

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

func (c *Client) writeCache(ctx context.Context, key string, val any) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.cacheTTL).Err()
}
