// Package chart renders the selected articles' view-count series as a
// log-scale line chart and writes it to a PNG file.
package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/dmastrih/refactiring-wiki-code/internal/stats"
	"github.com/dmastrih/refactiring-wiki-code/internal/timeseries"
)

// Title returns the chart title with the summary figures embedded.
func Title(s stats.Summary) string {
	return fmt.Sprintf("Top articles wiki views (Mean: %.2f, Max: %d, Articles: %d)",
		float64(s.MeanViews), s.MaxViews, s.UniqueArticles)
}

// Render draws one line per selected article on a shared log-scale view
// axis and saves the chart to path. The output directory must already
// exist; a failed save is returned to the caller as a fatal error.
func Render(top []timeseries.Series, summary stats.Summary, path string) error {
	p := plot.New()
	p.Title.Text = Title(summary)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Views"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	for i, s := range top {
		line, err := plotter.NewLine(seriesPoints(s))
		if err != nil {
			return fmt.Errorf("failed to build line for %q: %w", s.Article, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Article, line)
	}
	p.Legend.Top = true

	if err := p.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}
	return nil
}

// seriesPoints converts a series to plot coordinates. Undefined leading
// cells are omitted; a log axis cannot represent zero, so zero views are
// drawn at 1.
func seriesPoints(s timeseries.Series) plotter.XYs {
	pts := make(plotter.XYs, 0, len(s.Points))
	for _, p := range s.Points {
		if !p.Defined {
			continue
		}
		views := p.Views
		if views < 1 {
			views = 1
		}
		pts = append(pts, plotter.XY{
			X: float64(p.Date.Unix()),
			Y: float64(views),
		})
	}
	return pts
}
