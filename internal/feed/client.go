package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// Client fetches listings from a remote JSON feed. Requests are retried with
// backoff and rate-limited so a misconfigured startup loop cannot hammer the
// feed host.
type Client struct {
	url     string
	http    *retryablehttp.Client
	limiter *rate.Limiter
}

func NewClient(feedURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 6 * time.Second
	rc.Logger = nil

	return &Client{
		url:     feedURL,
		http:    rc,
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// Fetch downloads and decodes the feed payload.
func (c *Client) Fetch(ctx context.Context) ([]Listing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var body map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, fmt.Errorf("feed error %d: %v", resp.StatusCode, body)
	}
	b, err := ioReadAllLimit(resp.Body, 4<<20) // 4MB guard
	if err != nil {
		return nil, err
	}
	var payload struct {
		Listings []Listing `json:"listings"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, fmt.Errorf("feed decode: %w", err)
	}
	return payload.Listings, nil
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	lr := io.LimitReader(r, limit+1)
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}
