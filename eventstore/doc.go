// Package eventstore provides core abstractions and types for an in-memory store of
// typed, timestamped events.
//
// This package defines the fundamental interfaces and types used across
// event store implementations, including the Event value type, filters,
// iterators, observability hooks and common error definitions.
//
// The event store supports filtering of events based on:
//   - Exactly one event type
//   - A closed time range (occurred from/until, both inclusive)
//
// Key types:
//   - Event: Immutable (type, timestamp) value with value equality
//   - Filter: Defines criteria for querying events
//   - EventStore: Insert, RemoveAll, Query, Count
//   - EventIterator: Snapshot cursor with MoveNext, Current, Remove, Close
//
// Common usage pattern:
//
//	store.Insert(eventstore.NewEvent("PaymentReceived", 1700000000))
//
//	filter := eventstore.BuildEventFilter().
//		OfEventType("PaymentReceived").
//		OccurredFrom(1690000000).
//		AndOccurredUntil(1710000000).
//		Finalize()
//
//	it := store.QueryFilter(filter)
//	defer it.Close()
//
//	for it.MoveNext() {
//		if event := it.Current(); event.Timestamp() < cutoff {
//			if err := it.Remove(); err != nil {
//				// handle error
//			}
//		}
//	}
package eventstore
