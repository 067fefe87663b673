package models

import (
	"errors"
	"time"
)

// Article is one entry of a day's top-articles list as reported by the
// pageviews API.
type Article struct {
	Article string `json:"article"`
	Views   int64  `json:"views"`
	Rank    int    `json:"rank"`
}

// DailyTop represents the top-articles response for a single day.
// It is folded into a Table immediately after collection and not retained.
type DailyTop struct {
	Project  string    `json:"project"`
	Access   string    `json:"access"`
	Date     time.Time `json:"date"`
	Articles []Article `json:"articles"`
}

// Validate checks that all fields are valid
func (d *DailyTop) Validate() error {
	if d.Project == "" {
		return errors.New("project must not be empty")
	}
	if d.Access == "" {
		return errors.New("access must not be empty")
	}
	if d.Date.IsZero() {
		return errors.New("date must be set")
	}
	return nil
}
