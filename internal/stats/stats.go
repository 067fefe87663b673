// Package stats derives the run's summary figures from the raw table and
// the normalized top-article series.
package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/dmastrih/refactiring-wiki-code/internal/models"
	"github.com/dmastrih/refactiring-wiki-code/internal/timeseries"
)

// Summary holds the figures embedded in the chart title.
type Summary struct {
	// MeanViews is the mean of the per-article mean view counts over the
	// selected top articles, truncated to an integer.
	MeanViews int64
	// MaxViews is the largest single view count in the whole raw table,
	// deliberately not restricted to the top set so outliers that fell out
	// of the ranking still surface.
	MaxViews int64
	// UniqueArticles counts distinct articles across the whole raw table.
	UniqueArticles int
}

// Compute calculates the summary statistics. Forward-filled cells count as
// regular observations in the per-article means; undefined leading cells
// contribute nothing.
func Compute(raw models.Table, top []timeseries.Series) Summary {
	means := make([]float64, 0, len(top))
	for _, s := range top {
		var sum int64
		var count int
		for _, p := range s.Points {
			if !p.Defined {
				continue
			}
			sum += p.Views
			count++
		}
		if count > 0 {
			means = append(means, float64(sum)/float64(count))
		}
	}

	var mean int64
	if len(means) > 0 {
		mean = int64(stat.Mean(means, nil))
	}

	return Summary{
		MeanViews:      mean,
		MaxViews:       raw.MaxViews(),
		UniqueArticles: len(raw.Articles()),
	}
}
