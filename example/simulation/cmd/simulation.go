package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smtrad/challenge-eventstore/eventstore"
)

// typeTally counts what the tasks did to the events of one type.
type typeTally struct {
	inserted atomic.Int64
	removed  atomic.Int64
}

// Simulation runs the configured number of tasks against one store.
type Simulation struct {
	cfg       Config
	store     eventstore.EventStore
	generator *eventGenerator
	logger    *slog.Logger

	// read-only after construction, the values are updated atomically
	tallies        map[string]*typeTally
	ownEventMisses atomic.Int64
}

// Result is what a finished run observed.
type Result struct {
	Duration       time.Duration
	Inserted       map[string]int64
	Removed        map[string]int64
	OwnEventMisses int64
}

func NewSimulation(cfg Config, store eventstore.EventStore, logger *slog.Logger) *Simulation {
	tallies := make(map[string]*typeTally, len(cfg.EventTypes))
	for _, eventType := range cfg.EventTypes {
		tallies[eventType] = &typeTally{}
	}

	return &Simulation{
		cfg:       cfg,
		store:     store,
		generator: newEventGenerator(cfg.Seed, cfg.EventTypes, cfg.MaxTimestamp),
		logger:    logger,
		tallies:   tallies,
	}
}

// Run executes all tasks on at most cfg.Workers goroutines and waits for them.
// It stops early if ctx is canceled or a task fails.
func (s *Simulation) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.Workers)

	for task := 0; task < s.cfg.Tasks; task++ {
		if groupCtx.Err() != nil {
			break
		}

		event, shouldRemove, ok := s.generator.next(s.cfg.RemoveProbability)
		if !ok {
			_ = group.Wait()
			return Result{}, fmt.Errorf("event generator exhausted after %d tasks", task)
		}

		group.Go(func() error {
			return s.runTask(event, shouldRemove)
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	result := Result{
		Duration:       time.Since(start),
		Inserted:       make(map[string]int64, len(s.tallies)),
		Removed:        make(map[string]int64, len(s.tallies)),
		OwnEventMisses: s.ownEventMisses.Load(),
	}

	for eventType, tally := range s.tallies {
		result.Inserted[eventType] = tally.inserted.Load()
		result.Removed[eventType] = tally.removed.Load()
	}

	s.logger.Info("simulation finished",
		"tasks", s.cfg.Tasks,
		"duration_ms", result.Duration.Milliseconds(),
		"own_event_misses", result.OwnEventMisses,
	)

	return result, nil
}

// runTask inserts the event, finds it again through a window query and removes it if asked to.
func (s *Simulation) runTask(event eventstore.Event, shouldRemove bool) error {
	tally := s.tallies[event.Type()]

	s.store.Insert(event)
	tally.inserted.Add(1)

	it := s.store.Query(event.Type(), event.Timestamp()-s.cfg.QueryWindow, event.Timestamp()+s.cfg.QueryWindow)
	defer func() { _ = it.Close() }()

	for it.MoveNext() {
		if it.Current() != event {
			continue
		}

		if !shouldRemove {
			return nil
		}

		if err := it.Remove(); err != nil {
			return errors.Join(fmt.Errorf("removing %s failed", event), err)
		}

		tally.removed.Add(1)

		return nil
	}

	// Only this task removes its event, so the snapshot must contain it.
	s.ownEventMisses.Add(1)
	s.logger.Warn("task did not find its own event in the query snapshot", "event", event.String())

	return nil
}
