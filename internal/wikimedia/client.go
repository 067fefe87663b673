// Package wikimedia provides access to the Wikimedia pageviews REST API.
//
// The client fetches one day's top-articles list per call. Transport
// failures and bad statuses are retried a bounded number of times; an HTTP
// 429 waits out an exponential backoff inside the same attempt budget, per
// the documented rate limit. A day whose attempts are all exhausted is
// reported as ErrUnavailable so callers can treat it as a gap rather than a
// fatal error.
package wikimedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmastrih/refactiring-wiki-code/internal/config"
	"github.com/dmastrih/refactiring-wiki-code/internal/logger"
	"github.com/dmastrih/refactiring-wiki-code/internal/models"
)

const topEndpoint = "pageviews/top"

// ErrUnavailable reports that no data could be fetched for a day after all
// retry attempts were spent.
var ErrUnavailable = errors.New("top articles unavailable")

// RetryPolicy controls how FetchTopArticles retries a failing day.
type RetryPolicy struct {
	// MaxAttempts bounds the retry loop; transport failures, bad statuses
	// and rate-limit waits all consume attempts from the same budget.
	MaxAttempts int
	// RetryDelay is slept between attempts after a transport failure or an
	// unexpected status.
	RetryDelay time.Duration
	// RateLimitBackoff returns the wait after an HTTP 429 on the given
	// zero-based attempt.
	RateLimitBackoff func(attempt int) time.Duration
}

// DefaultBackoff waits 2^attempt + 1 seconds, matching the pageviews API
// rate-limit guidance.
func DefaultBackoff(attempt int) time.Duration {
	return time.Duration(1<<attempt+1) * time.Second
}

// Client provides access to the pageviews top-articles endpoint
type Client struct {
	apiBaseURL string
	project    string
	access     string
	userAgent  string
	httpClient *http.Client
	policy     RetryPolicy
	log        *logger.Logger

	// sleep is swapped out in tests to observe backoff without waiting.
	sleep func(time.Duration)
}

// NewClient creates a pageviews client from configuration.
func NewClient(cfg config.WikimediaConfig, log *logger.Logger) *Client {
	policy := RetryPolicy{
		MaxAttempts:      cfg.MaxRetries,
		RetryDelay:       cfg.RetryDelay,
		RateLimitBackoff: DefaultBackoff,
	}
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 3
	}
	if policy.RetryDelay <= 0 {
		policy.RetryDelay = time.Second
	}

	return &Client{
		apiBaseURL: cfg.APIBaseURL,
		project:    cfg.Project,
		access:     cfg.Access,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		policy: policy,
		log:    log,
		sleep:  time.Sleep,
	}
}

// topResponse mirrors the endpoint's JSON body:
// {"items": [{"articles": [{"article": ..., "views": ..., "rank": ...}]}]}
type topResponse struct {
	Items []struct {
		Project  string           `json:"project"`
		Access   string           `json:"access"`
		Articles []models.Article `json:"articles"`
	} `json:"items"`
}

// FetchTopArticles retrieves the top-articles list for one calendar day.
// It returns ErrUnavailable when every attempt failed; any other error means
// the day's response could not be used (for example a malformed body).
func (c *Client) FetchTopArticles(ctx context.Context, day time.Time) (*models.DailyTop, error) {
	// The endpoint requires zero-padded month and day segments.
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.apiBaseURL, topEndpoint, c.project, c.access, day.Format("2006/01/02"))

	for attempt := 0; attempt < c.policy.MaxAttempts; attempt++ {
		c.log.Info("Requesting top articles for %s (attempt %d)", day.Format("2006-01-02"), attempt+1)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn("Request failed (attempt %d): %v", attempt+1, err)
			if attempt < c.policy.MaxAttempts-1 {
				c.sleep(c.policy.RetryDelay)
			}
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			wait := c.policy.RateLimitBackoff(attempt)
			c.log.Warn("Rate limit exceeded, waiting %v", wait)
			c.sleep(wait)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			c.log.Warn("Request failed (attempt %d): unexpected status %d", attempt+1, resp.StatusCode)
			if attempt < c.policy.MaxAttempts-1 {
				c.sleep(c.policy.RetryDelay)
			}
			continue
		}

		var payload topResponse
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode top articles for %s: %w", day.Format("2006-01-02"), err)
		}
		if len(payload.Items) == 0 {
			return nil, fmt.Errorf("malformed top articles response for %s: no items", day.Format("2006-01-02"))
		}

		return &models.DailyTop{
			Project:  c.project,
			Access:   c.access,
			Date:     day,
			Articles: payload.Items[0].Articles,
		}, nil
	}

	c.log.Error("Failed to fetch top articles for %s after %d attempts", day.Format("2006-01-02"), c.policy.MaxAttempts)
	return nil, ErrUnavailable
}
