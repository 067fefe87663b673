// Package timeseries turns the sparse raw observation table into dense,
// forward-filled per-article series and selects the leading articles by
// their most recent view count.
package timeseries

import (
	"sort"
	"time"

	"github.com/dmastrih/refactiring-wiki-code/internal/models"
)

const dateKey = "2006-01-02"

// Point is one cell of an article's daily series. Defined is false for
// leading cells before the article's first observation, where forward fill
// has nothing to propagate.
type Point struct {
	Date    time.Time
	Views   int64
	Defined bool
}

// Series is one article's view counts over the full date range, in
// chronological order.
type Series struct {
	Article string
	Points  []Point
}

// Last returns the series' latest forward-filled view count.
func (s Series) Last() (int64, bool) {
	if len(s.Points) == 0 {
		return 0, false
	}
	p := s.Points[len(s.Points)-1]
	return p.Views, p.Defined
}

// Normalize reindexes the raw table onto the complete article × date grid
// over [MinDate, MaxDate], forward-fills each article's gaps from the
// nearest earlier observation, and keeps the topN articles with the largest
// latest value. Ties keep first-seen order. It returns the selected series
// in selection order together with the selected article names.
func Normalize(table models.Table, topN int) ([]Series, []string) {
	if len(table) == 0 {
		return nil, nil
	}

	articles := table.Articles()
	dates := dateRange(table.MinDate(), table.MaxDate())

	observed := make(map[string]map[string]int64, len(articles))
	for _, o := range table {
		byDate := observed[o.Article]
		if byDate == nil {
			byDate = make(map[string]int64)
			observed[o.Article] = byDate
		}
		byDate[o.Date.Format(dateKey)] = o.Views
	}

	series := make([]Series, 0, len(articles))
	for _, article := range articles {
		series = append(series, fill(article, dates, observed[article]))
	}

	// Largest latest value first; SliceStable keeps first-seen order on ties.
	sort.SliceStable(series, func(i, j int) bool {
		vi, _ := series[i].Last()
		vj, _ := series[j].Last()
		return vi > vj
	})

	if topN > len(series) {
		topN = len(series)
	}
	selected := series[:topN]

	names := make([]string, len(selected))
	for i, s := range selected {
		names[i] = s.Article
	}
	return selected, names
}

// dateRange lists every calendar day from start to end inclusive.
func dateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}
	return dates
}

// fill builds one article's dense series, carrying the last seen value
// across gaps. Cells before the first observation stay undefined.
func fill(article string, dates []time.Time, byDate map[string]int64) Series {
	points := make([]Point, 0, len(dates))
	var last int64
	seen := false
	for _, date := range dates {
		if v, ok := byDate[date.Format(dateKey)]; ok {
			last = v
			seen = true
		}
		points = append(points, Point{Date: date, Views: last, Defined: seen})
	}
	return Series{Article: article, Points: points}
}
