// Command migrate applies the goose migrations in database.migrations_dir.
//
// Usage:
//
//	migrate [--config=path] [up|down|status]
//
// The default command is up. Without --config, configuration is loaded the
// same way as the server's.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/dietrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dietrack-backend/internal/app"
	"github.com/heartmarshall/dietrack-backend/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "YAML config file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [--config=path] [up|down|status]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN, cfg.Database.MigrationsDir)
	if err != nil {
		logger.Error("open migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	switch command {
	case "up":
		results, err := m.Up(ctx)
		for _, r := range results {
			logger.Info("migration applied",
				slog.String("source", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		if err != nil {
			logger.Error("migrate up failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrate up completed", slog.Int("applied", len(results)))

	case "down":
		r, err := m.Down(ctx)
		if err != nil {
			logger.Error("migrate down failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migration rolled back", slog.String("source", r.Source.Path))

	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			logger.Error("migrate status failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, s := range statuses {
			fmt.Printf("%-8s %s\n", s.State, s.Source.Path)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}
