// Command ledger-audit reports nutrient ledgers whose totals differ from the
// sum of the dishes recorded under them. It only reads and is intended to
// be invoked by an external cron job.
//
// Usage:
//
//	ledger-audit [--config=path] [--from=2026-03-01] [--to=2026-03-31] [--tolerance=0.01] [--workers=4]
//
// --from and --to default to yesterday and today (UTC).
//
// Exit codes: 0 = no drift, 1 = error, 2 = drift found.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/dietrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dietrack-backend/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/dietrack-backend/internal/app"
	"github.com/heartmarshall/dietrack-backend/internal/config"
	"github.com/heartmarshall/dietrack-backend/internal/service/audit"
)

func main() {
	today := time.Now().UTC()
	from := flag.String("from", today.AddDate(0, 0, -1).Format(time.DateOnly), "first day to scan (YYYY-MM-DD)")
	to := flag.String("to", today.Format(time.DateOnly), "last day to scan (YYYY-MM-DD)")
	tolerance := flag.Float64("tolerance", audit.DefaultTolerance, "largest per-nutrient difference not reported")
	workers := flag.Int("workers", 4, "days scanned concurrently")
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "YAML config file")
	flag.Parse()

	fromDay, err := time.Parse(time.DateOnly, *from)
	if err != nil {
		log.Fatalf("invalid --from: %v", err)
	}
	toDay, err := time.Parse(time.DateOnly, *to)
	if err != nil {
		log.Fatalf("invalid --to: %v", err)
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := audit.NewService(logger, ledger.New(pool))

	drifts, err := svc.Run(ctx, audit.Input{
		From:      fromDay,
		To:        toDay,
		Tolerance: *tolerance,
		Workers:   *workers,
	})
	if err != nil {
		logger.Error("ledger audit failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(drifts) > 0 {
		os.Exit(2)
	}
}
