package collector

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/dmastrih/refactiring-wiki-code/internal/logger"
	"github.com/dmastrih/refactiring-wiki-code/internal/models"
	"github.com/dmastrih/refactiring-wiki-code/internal/wikimedia"
)

// fakeFetcher serves canned per-day responses without touching the network.
type fakeFetcher struct {
	data  map[string]*models.DailyTop
	calls int
}

func (f *fakeFetcher) FetchTopArticles(ctx context.Context, day time.Time) (*models.DailyTop, error) {
	f.calls++
	if top, ok := f.data[day.Format("2006-01-02")]; ok {
		return top, nil
	}
	return nil, wikimedia.ErrUnavailable
}

func date(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func dayTop(day time.Time, articles ...models.Article) *models.DailyTop {
	return &models.DailyTop{
		Project:  "en.wikipedia",
		Access:   "all-access",
		Date:     day,
		Articles: articles,
	}
}

func testCollector(fetcher Fetcher) *Collector {
	c := New(fetcher, logger.NewWithWriter(io.Discard, "error", "text"))
	c.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestCollect_RangeInclusive(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string]*models.DailyTop{
		"2024-03-01": dayTop(date(1), models.Article{Article: "A", Views: 100, Rank: 1}),
		"2024-03-02": dayTop(date(2), models.Article{Article: "A", Views: 110, Rank: 1}),
		"2024-03-03": dayTop(date(3), models.Article{Article: "A", Views: 120, Rank: 1}),
	}}
	coll := testCollector(fetcher)

	table, err := coll.Collect(context.Background(), date(1), date(3))
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if fetcher.calls != 3 {
		t.Errorf("Expected 3 fetches, got %d", fetcher.calls)
	}
	if len(table) != 3 {
		t.Fatalf("Expected 3 observations, got %d", len(table))
	}
	for _, o := range table {
		if o.Date.Before(date(1)) || o.Date.After(date(3)) {
			t.Errorf("Observation outside range: %+v", o)
		}
	}
}

func TestCollect_SingleDay(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string]*models.DailyTop{
		"2024-03-01": dayTop(date(1), models.Article{Article: "A", Views: 100, Rank: 1}),
	}}
	coll := testCollector(fetcher)

	table, err := coll.Collect(context.Background(), date(1), date(1))
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("Expected 1 fetch, got %d", fetcher.calls)
	}
	if len(table) != 1 {
		t.Errorf("Expected 1 observation, got %d", len(table))
	}
}

func TestCollect_StartAfterEnd(t *testing.T) {
	fetcher := &fakeFetcher{}
	coll := testCollector(fetcher)

	_, err := coll.Collect(context.Background(), date(5), date(1))
	if !errors.Is(err, ErrStartAfterEnd) {
		t.Fatalf("Expected ErrStartAfterEnd, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("Validation must run before any fetch, got %d calls", fetcher.calls)
	}
}

func TestCollect_StartInFuture(t *testing.T) {
	fetcher := &fakeFetcher{}
	coll := testCollector(fetcher)

	future := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	_, err := coll.Collect(context.Background(), future, future.AddDate(0, 0, 3))
	if !errors.Is(err, ErrStartInFuture) {
		t.Fatalf("Expected ErrStartInFuture, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("Validation must run before any fetch, got %d calls", fetcher.calls)
	}
}

func TestCollect_FailedDayBecomesGap(t *testing.T) {
	// Day 2 exhausts its retries; the run must carry on with the rest.
	fetcher := &fakeFetcher{data: map[string]*models.DailyTop{
		"2024-03-01": dayTop(date(1), models.Article{Article: "A", Views: 100, Rank: 1}),
		"2024-03-03": dayTop(date(3), models.Article{Article: "A", Views: 120, Rank: 1}),
	}}
	coll := testCollector(fetcher)

	table, err := coll.Collect(context.Background(), date(1), date(3))
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("Expected 2 observations, got %d", len(table))
	}
	for _, o := range table {
		if o.Date.Equal(date(2)) {
			t.Errorf("Failed day must contribute zero rows, got %+v", o)
		}
	}
}

func TestCollect_EmptyArticleListBecomesGap(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string]*models.DailyTop{
		"2024-03-01": dayTop(date(1)),
		"2024-03-02": dayTop(date(2), models.Article{Article: "A", Views: 100, Rank: 1}),
	}}
	coll := testCollector(fetcher)

	table, err := coll.Collect(context.Background(), date(1), date(2))
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("Expected 1 observation, got %d", len(table))
	}
	if !table[0].Date.Equal(date(2)) {
		t.Errorf("Expected observation for day 2, got %+v", table[0])
	}
}

func TestCollect_AllDaysFailed(t *testing.T) {
	fetcher := &fakeFetcher{}
	coll := testCollector(fetcher)

	_, err := coll.Collect(context.Background(), date(1), date(3))
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Expected ErrNoData, got %v", err)
	}
	if fetcher.calls != 3 {
		t.Errorf("Expected every day to be attempted, got %d calls", fetcher.calls)
	}
}

func TestCollect_ContextCanceled(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string]*models.DailyTop{
		"2024-03-01": dayTop(date(1), models.Article{Article: "A", Views: 100, Rank: 1}),
	}}
	coll := testCollector(fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coll.Collect(ctx, date(1), date(3))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("Expected no fetches after cancellation, got %d", fetcher.calls)
	}
}
