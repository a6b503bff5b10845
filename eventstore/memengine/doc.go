// Package memengine provides an in-memory implementation of the eventstore interface.
//
// This package keeps typed, timestamped events in a map of per-type sets guarded by a single
// mutex, so every public operation is atomic with respect to every other one.
//
// Key features:
//   - Set semantics: events are unique by value (type, timestamp)
//   - Snapshot queries over one event type and a closed time range
//   - Iterators that walk their snapshot outside the lock and can remove
//     the last yielded event from the store
//   - Optional logging and metrics, always invoked outside the critical section
//
// Usage examples:
//
//	// Basic usage
//	store, _ := memengine.NewEventStore()
//
//	// With operational logging and metrics
//	store, _ := memengine.NewEventStore(
//		memengine.WithStoreName("payments"),
//		memengine.WithLogger(slog.Default()),
//		memengine.WithMetrics(metricsCollector),
//	)
//
//	store.Insert(eventstore.NewEvent("PaymentReceived", 42))
//	it := store.Query("PaymentReceived", 0, 100)
//	defer it.Close()
package memengine
