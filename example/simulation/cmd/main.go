package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/smtrad/challenge-eventstore/eventstore/memengine"
)

const (
	exitOK     = 0
	exitFailed = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one simulation and returns the process exit code.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	bootLogger := slog.New(slog.NewJSONHandler(stderr, nil))

	cfg, err := parseFlags(args)
	if err != nil {
		bootLogger.Error("reading the configuration failed", "error", err.Error())
		return exitFailed
	}

	if err = cfg.Validate(); err != nil {
		bootLogger.Error("the configuration is invalid", "error", err.Error())
		return exitFailed
	}

	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	runID := uuid.NewString()
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With("run_id", runID)

	storeOptions := []memengine.Option{memengine.WithStoreName("simulation")}
	if cfg.StoreLogging {
		storeOptions = append(storeOptions, memengine.WithLogger(logger.With("component", "eventstore")))
	}

	store, err := memengine.NewEventStore(storeOptions...)
	if err != nil {
		logger.Error("creating the event store failed", "error", err.Error())
		return exitFailed
	}

	logger.Info("simulation starting",
		"workers", cfg.Workers,
		"tasks", cfg.Tasks,
		"event_types", cfg.EventTypes,
		"seed", cfg.Seed,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := NewSimulation(cfg, store, logger).Run(ctx)
	if err != nil {
		logger.Error("simulation failed", "error", err.Error())
		return exitFailed
	}

	report := BuildReport(runID, cfg, result, store)
	report.ProcessRSSBytes = processRSS()

	if err = WriteReport(stdout, report); err != nil {
		logger.Error("writing the report failed", "error", err.Error())
		return exitFailed
	}

	if !report.OK {
		logger.Error("store counts do not match the tallies", "mismatches", report.Mismatches)
		return exitFailed
	}

	return exitOK
}
