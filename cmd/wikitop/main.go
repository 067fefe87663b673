package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/dmastrih/refactiring-wiki-code/internal/chart"
	"github.com/dmastrih/refactiring-wiki-code/internal/collector"
	"github.com/dmastrih/refactiring-wiki-code/internal/config"
	"github.com/dmastrih/refactiring-wiki-code/internal/logger"
	"github.com/dmastrih/refactiring-wiki-code/internal/stats"
	"github.com/dmastrih/refactiring-wiki-code/internal/telegram"
	"github.com/dmastrih/refactiring-wiki-code/internal/timeseries"
	"github.com/dmastrih/refactiring-wiki-code/internal/wikimedia"
)

const dateLayout = "20060102"

var configPath = flag.String("config", "", "Path to configuration file (optional)")

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-config path] START END\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  START and END are dates in YYYYMMDD format, inclusive.")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	lg := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	start, err := time.Parse(dateLayout, flag.Arg(0))
	if err != nil {
		lg.Error("Invalid start date %q: expected YYYYMMDD", flag.Arg(0))
		os.Exit(1)
	}
	end, err := time.Parse(dateLayout, flag.Arg(1))
	if err != nil {
		lg.Error("Invalid end date %q: expected YYYYMMDD", flag.Arg(1))
		os.Exit(1)
	}

	// Stop between days on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		lg.Info("Shutdown signal received, stopping...")
		cancel()
	}()

	if err := run(ctx, cfg, lg, start, end); err != nil {
		lg.Error("Run failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, lg *logger.Logger, start, end time.Time) error {
	runID := uuid.New().String()
	lg.Info("Starting run %s: top articles for %s from %s to %s",
		runID, cfg.Wikimedia.Project, start.Format("2006-01-02"), end.Format("2006-01-02"))

	client := wikimedia.NewClient(cfg.Wikimedia, lg)
	coll := collector.New(client, lg)

	table, err := coll.Collect(ctx, start, end)
	if err != nil {
		return err
	}

	top, names := timeseries.Normalize(table, cfg.Report.TopArticles)
	lg.Info("Selected %d top articles", len(names))

	summary := stats.Compute(table, top)
	lg.Info("Statistics: mean=%d max=%d articles=%d",
		summary.MeanViews, summary.MaxViews, summary.UniqueArticles)

	lg.Info("Creating chart")
	if err := chart.Render(top, summary, cfg.Report.OutputPath); err != nil {
		return err
	}
	lg.Info("Chart saved to '%s'", cfg.Report.OutputPath)

	if cfg.Telegram.Enabled {
		notifyRun(cfg, lg, telegram.RunSummary{
			RunID:      runID,
			Start:      start,
			End:        end,
			Stats:      summary,
			OutputPath: cfg.Report.OutputPath,
		})
	}

	return nil
}

// notifyRun sends the run summary when Telegram is enabled. The chart is
// the product; a failed notification only warns.
func notifyRun(cfg *config.Config, lg *logger.Logger, summary telegram.RunSummary) {
	tc, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID,
		cfg.Telegram.MaxRetries, cfg.Telegram.RetryDelayBase)
	if err != nil {
		lg.Warn("Failed to initialize Telegram client: %v", err)
		return
	}
	if err := tc.SendRunSummary(summary); err != nil {
		lg.Warn("Failed to send run summary: %v", err)
		return
	}
	lg.Info("Run summary sent")
}
