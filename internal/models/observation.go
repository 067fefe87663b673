package models

import (
	"errors"
	"time"
)

// Observation is one raw row of the collected dataset: an article's view
// count as reported in one day's top list. Articles missing from a day's
// list have no observation for that day, they are never recorded as zero.
type Observation struct {
	Article string    `json:"article"`
	Views   int64     `json:"views"`
	Date    time.Time `json:"date"`
}

// Validate checks that all observation fields are valid
func (o *Observation) Validate() error {
	if o.Article == "" {
		return errors.New("article must not be empty")
	}
	if o.Views < 0 {
		return errors.New("views must not be negative")
	}
	if o.Date.IsZero() {
		return errors.New("date must be set")
	}
	return nil
}

// Table is the raw observation table accumulated over a whole date range.
type Table []Observation

// Articles returns the distinct article names in first-seen order.
func (t Table) Articles() []string {
	seen := make(map[string]bool, len(t))
	var articles []string
	for _, o := range t {
		if !seen[o.Article] {
			seen[o.Article] = true
			articles = append(articles, o.Article)
		}
	}
	return articles
}

// MinDate returns the earliest observation date, or the zero time for an
// empty table.
func (t Table) MinDate() time.Time {
	var min time.Time
	for _, o := range t {
		if min.IsZero() || o.Date.Before(min) {
			min = o.Date
		}
	}
	return min
}

// MaxDate returns the latest observation date, or the zero time for an
// empty table.
func (t Table) MaxDate() time.Time {
	var max time.Time
	for _, o := range t {
		if o.Date.After(max) {
			max = o.Date
		}
	}
	return max
}

// MaxViews returns the largest view count across the whole table.
func (t Table) MaxViews() int64 {
	var max int64
	for _, o := range t {
		if o.Views > max {
			max = o.Views
		}
	}
	return max
}
