package memengine

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/smtrad/challenge-eventstore/eventstore"
)

const (
	defaultStoreName            = "default"
	logMsgEventInserted         = "event inserted"
	logMsgEventRemoved          = "event removed"
	logMsgEventsRemovedByType   = "events removed by type"
	logMsgQueryCompleted        = "query completed"
	logMsgRemoveFoundNoEvent    = "iterator removal found no matching event"
	logMsgOperation             = "eventstore operation: "
	logAttrStore                = "store"
	logAttrEventType            = "event_type"
	logAttrTimestamp            = "timestamp"
	logAttrEventCount           = "event_count"
	logAttrDurationMS           = "duration_ms"
	logAttrInserted             = "inserted"
	logAttrOccurredFrom         = "occurred_from"
	logAttrOccurredUntil        = "occurred_until"
	labelOperation              = "operation"
	labelStatus                 = "status"
	labelStore                  = "store"
	labelEventType              = "event_type"
	operationInsert             = "insert"
	operationRemove             = "remove"
	operationRemoveAll          = "remove_all"
	operationQuery              = "query"
	statusSuccess               = "success"
	statusNoop                  = "noop"
	statusMiss                  = "miss"
	metricInsertTotal           = "eventstore_insert_total"
	metricRemoveTotal           = "eventstore_remove_total"
	metricRemoveAllTotal        = "eventstore_remove_all_total"
	metricEventsRemoved         = "eventstore_events_removed"
	metricQueryDuration         = "eventstore_query_duration_seconds"
	metricEventsQueried         = "eventstore_events_queried"
	initialEventsPerTypeHint    = 16
	snapshotCapacityUpperBound  = 1024
	noElementYielded            = -1
	durationMillisecondsDivisor = 1e6
)

type eventSet = map[eventstore.Event]struct{}

// EventStore is an in-memory event store holding one set of events per event type.
//
// All state is guarded by one mutex; every public method holds it for the duration of its
// in-memory work only and never calls the logger or metrics collector while holding it.
// The zero value is not usable, create instances with NewEventStore.
type EventStore struct {
	mu               sync.Mutex
	eventsByType     map[eventstore.EventTypeString]eventSet
	storeName        string
	logger           eventstore.Logger
	metricsCollector eventstore.MetricsCollector
}

// NewEventStore creates a new, empty EventStore with optional configuration.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{
		eventsByType: make(map[eventstore.EventTypeString]eventSet),
		storeName:    defaultStoreName,
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Insert adds the event to the set of its type, creating the set if absent.
// Inserting an event equal to a stored one is a no-op.
func (es *EventStore) Insert(event eventstore.Event) {
	inserted := es.insertLocked(event)

	es.observeInsert(event, inserted)
}

func (es *EventStore) insertLocked(event eventstore.Event) bool {
	es.mu.Lock()
	defer es.mu.Unlock()

	events, exists := es.eventsByType[event.Type()]
	if !exists {
		events = make(eventSet, initialEventsPerTypeHint)
		es.eventsByType[event.Type()] = events
	}

	if _, alreadyStored := events[event]; alreadyStored {
		return false
	}

	events[event] = struct{}{}

	return true
}

// RemoveAll deletes every event of the given type in one atomic step.
// An unknown type is a no-op.
func (es *EventStore) RemoveAll(eventType eventstore.EventTypeString) {
	removed := es.removeAllLocked(eventType)

	es.observeRemoveAll(eventType, removed)
}

func (es *EventStore) removeAllLocked(eventType eventstore.EventTypeString) int {
	es.mu.Lock()
	defer es.mu.Unlock()

	removed := len(es.eventsByType[eventType])
	delete(es.eventsByType, eventType)

	return removed
}

// Query returns an iterator over a snapshot of the events of the given type
// with startTime <= timestamp <= endTime.
//
// An unknown type or a range with startTime > endTime yields an empty iterator.
// The snapshot is sorted by timestamp ascending.
func (es *EventStore) Query(
	eventType eventstore.EventTypeString,
	startTime eventstore.TimestampInt64,
	endTime eventstore.TimestampInt64,
) eventstore.EventIterator {
	filter := eventstore.BuildEventFilter().
		OfEventType(eventType).
		InTimeRange(startTime, endTime).
		Finalize()

	return es.QueryFilter(filter)
}

// QueryFilter returns an iterator over a snapshot of the events matching the eventstore.Filter.
//
// The snapshot reflects one consistent state of the store; later mutations are not visible
// through the returned iterator except removals made through the iterator itself.
func (es *EventStore) QueryFilter(filter eventstore.Filter) eventstore.EventIterator {
	start := time.Now()
	snapshot := es.snapshotLocked(filter)

	slices.SortFunc(snapshot, func(a, b eventstore.Event) int {
		return cmp.Compare(a.Timestamp(), b.Timestamp())
	})

	duration := time.Since(start)

	es.observeQuery(filter, len(snapshot), duration)

	return newQueryIterator(es, snapshot)
}

func (es *EventStore) snapshotLocked(filter eventstore.Filter) eventstore.Events {
	if filter.HasEmptyTimeRange() {
		return make(eventstore.Events, 0)
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	events := es.eventsByType[filter.EventType()]
	snapshot := make(eventstore.Events, 0, min(len(events), snapshotCapacityUpperBound))

	for event := range events {
		if filter.MatchesTimeRange(event) {
			snapshot = append(snapshot, event)
		}
	}

	return snapshot
}

// Count returns the total number of events across all types.
func (es *EventStore) Count() eventstore.CountInt64 {
	es.mu.Lock()
	defer es.mu.Unlock()

	var total eventstore.CountInt64
	for _, events := range es.eventsByType {
		total += eventstore.CountInt64(len(events))
	}

	return total
}

// CountByType returns the number of events of the given type. An unknown type returns 0.
func (es *EventStore) CountByType(eventType eventstore.EventTypeString) eventstore.CountInt64 {
	es.mu.Lock()
	defer es.mu.Unlock()

	return eventstore.CountInt64(len(es.eventsByType[eventType]))
}

// removeYielded deletes one event which an iterator yielded before.
// The event may already be gone because of a concurrent RemoveAll, which is not an error.
func (es *EventStore) removeYielded(event eventstore.Event) {
	removed := es.removeLocked(event)

	es.observeRemove(event, removed)
}

// removeLocked deletes the event and prunes the type's set once it is empty.
func (es *EventStore) removeLocked(event eventstore.Event) bool {
	es.mu.Lock()
	defer es.mu.Unlock()

	events, exists := es.eventsByType[event.Type()]
	if !exists {
		return false
	}

	if _, stored := events[event]; !stored {
		return false
	}

	delete(events, event)

	if len(events) == 0 {
		delete(es.eventsByType, event.Type())
	}

	return true
}

// Ensure EventStore implements eventstore.EventStore.
var _ eventstore.EventStore = (*EventStore)(nil)
