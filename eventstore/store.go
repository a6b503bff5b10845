package eventstore

// EventStore is a keyed collection of event sets supporting insertion, bulk removal by type,
// time range queries and counting. Implementations are safe for concurrent use.
type EventStore interface {
	// Insert adds the event. Inserting an event equal to a stored one is a no-op.
	Insert(event Event)

	// RemoveAll deletes every event of the given type. An unknown type is a no-op.
	RemoveAll(eventType EventTypeString)

	// Query returns an iterator over a snapshot of the events of the given type
	// with startTime <= timestamp <= endTime.
	Query(eventType EventTypeString, startTime TimestampInt64, endTime TimestampInt64) EventIterator

	// QueryFilter returns an iterator over a snapshot of the events matching the Filter.
	QueryFilter(filter Filter) EventIterator

	// Count returns the number of events across all types.
	Count() CountInt64

	// CountByType returns the number of events of the given type.
	CountByType(eventType EventTypeString) CountInt64
}

// EventIterator is a forward-only cursor over a snapshot of events taken at query time.
//
// The protocol is:
//
//	it := store.Query("A", 0, 10)
//	defer it.Close()
//
//	for it.MoveNext() {
//		event := it.Current()
//		// ...
//	}
//
// An EventIterator must only be used by one goroutine at a time.
type EventIterator interface {
	// MoveNext reports whether an unread element exists. It does not advance the cursor.
	MoveNext() bool

	// Current returns the element at the cursor and advances the cursor by one.
	// Past the end it returns the zero Event and leaves the cursor unchanged.
	Current() Event

	// Remove deletes the element most recently returned by Current from the store
	// and from the iterator's snapshot.
	// It returns ErrUnsupportedOperation if no element has been consumed yet
	// or the last consumed element was already removed.
	Remove() error

	// Close discards the snapshot and resets the cursor. It is idempotent and never touches the store.
	Close() error
}
