// Command cleanup removes availability entries dated further in the past than
// schedule.retention_days. It is meant to run from an external cron job.
//
// Exit codes: 0 = success, 1 = error, 2 = bad flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/golang-sql/civil"

	"github.com/heartmarshall/court-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/court-scheduler/internal/adapter/postgres/availability"
	"github.com/heartmarshall/court-scheduler/internal/app"
	"github.com/heartmarshall/court-scheduler/internal/config"
	"github.com/heartmarshall/court-scheduler/internal/domain"
)

type purger interface {
	CountBefore(ctx context.Context, day civil.Date) (int64, error)
	DeleteBefore(ctx context.Context, day civil.Date) (int64, error)
}

type options struct {
	retentionDays int
	dryRun        bool
}

func main() {
	var opts options
	flag.IntVar(&opts.retentionDays, "retention-days", 0, "override schedule.retention_days")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "report how many entries would be removed without deleting")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if opts.retentionDays == 0 {
		opts.retentionDays = cfg.Schedule.RetentionDays
	}
	if opts.retentionDays < 1 {
		fmt.Fprintln(os.Stderr, "retention days must be positive")
		os.Exit(2)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	today := domain.Today(time.Now(), cfg.Schedule.Location)
	if err := run(ctx, availability.New(pool), today, opts, logger); err != nil {
		pool.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, repo purger, today civil.Date, opts options, logger *slog.Logger) error {
	if opts.retentionDays < 1 {
		return errors.New("retention days must be positive")
	}
	cutoff := today.AddDays(-opts.retentionDays)
	attrs := []any{slog.String("cutoff", cutoff.String()), slog.Bool("dry_run", opts.dryRun)}

	purge := repo.DeleteBefore
	if opts.dryRun {
		purge = repo.CountBefore
	}

	n, err := purge(ctx, cutoff)
	if err != nil {
		logger.ErrorContext(ctx, "availability cleanup failed", append(attrs, slog.String("error", err.Error()))...)
		return err
	}

	logger.InfoContext(ctx, "availability cleanup completed", append(attrs, slog.Int64("affected", n))...)
	return nil
}
