// Package collector walks a date range one day at a time and accumulates
// the raw observation table from the pageviews API.
//
// Collection is strictly sequential; the single request per day keeps the
// tool inside the endpoint's documented rate limit without any pacing logic.
package collector

import (
	"context"
	"errors"
	"time"

	"github.com/dmastrih/refactiring-wiki-code/internal/logger"
	"github.com/dmastrih/refactiring-wiki-code/internal/models"
)

var (
	// ErrStartAfterEnd reports a range whose start date is after its end date.
	ErrStartAfterEnd = errors.New("start date is after end date")
	// ErrStartInFuture reports a range whose start date has not happened yet.
	ErrStartInFuture = errors.New("start date is in the future")
	// ErrNoData reports that every day in the range failed to produce data.
	ErrNoData = errors.New("no data collected for any day in range")
)

// Fetcher fetches one day's top-articles list.
type Fetcher interface {
	FetchTopArticles(ctx context.Context, day time.Time) (*models.DailyTop, error)
}

// Collector accumulates raw observations over a date range
type Collector struct {
	client Fetcher
	log    *logger.Logger

	// now is swapped out in tests to pin the future-date check.
	now func() time.Time
}

// New creates a Collector using the given fetcher.
func New(client Fetcher, log *logger.Logger) *Collector {
	return &Collector{
		client: client,
		log:    log,
		now:    time.Now,
	}
}

// validateRange rejects invalid ranges before any network call is made.
func (c *Collector) validateRange(start, end time.Time) error {
	if start.After(end) {
		return ErrStartAfterEnd
	}
	if start.After(c.now()) {
		return ErrStartInFuture
	}
	c.log.Info("Date range validated: %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	return nil
}

// Collect fetches the top-articles list for every day in [start, end]
// inclusive and flattens the responses into one raw table. A day that fails
// or comes back empty contributes zero rows; only a completely empty table
// is an error.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) (models.Table, error) {
	if err := c.validateRange(start, end); err != nil {
		return nil, err
	}

	var table models.Table
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top, err := c.client.FetchTopArticles(ctx, day)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn("No data for %s: %v", day.Format("2006-01-02"), err)
			continue
		}
		if len(top.Articles) == 0 {
			c.log.Warn("No data for %s: empty article list", day.Format("2006-01-02"))
			continue
		}

		for _, a := range top.Articles {
			table = append(table, models.Observation{
				Article: a.Article,
				Views:   a.Views,
				Date:    day,
			})
		}
		c.log.Info("Collected %d articles for %s", len(top.Articles), day.Format("2006-01-02"))
	}

	if len(table) == 0 {
		return nil, ErrNoData
	}

	c.log.Info("Collected %d observations in total", len(table))
	return table, nil
}
