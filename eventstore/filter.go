package eventstore

import (
	"math"
)

type FilterEventTypeString = string

/***** Filter *****/

// Filter selects the events of exactly one event type whose timestamp lies in the closed
// interval [OccurredFrom, OccurredUntil].
//
// Bounds which were not set default to math.MinInt64 and math.MaxInt64, so a Filter built
// without a time range matches every event of its type.
type Filter struct {
	eventType     FilterEventTypeString
	occurredFrom  TimestampInt64
	occurredUntil TimestampInt64
}

func (f Filter) EventType() FilterEventTypeString {
	return f.eventType
}

func (f Filter) OccurredFrom() TimestampInt64 {
	return f.occurredFrom
}

func (f Filter) OccurredUntil() TimestampInt64 {
	return f.occurredUntil
}

// HasEmptyTimeRange reports whether the time range can not match anything (from > until).
func (f Filter) HasEmptyTimeRange() bool {
	return f.occurredFrom > f.occurredUntil
}

// Matches reports whether the event has the Filter's type and a timestamp within the closed time range.
func (f Filter) Matches(event Event) bool {
	return event.Type() == f.eventType &&
		event.Timestamp() >= f.occurredFrom &&
		event.Timestamp() <= f.occurredUntil
}

// MatchesTimeRange reports whether the event's timestamp lies within the closed time range, ignoring the type.
func (f Filter) MatchesTimeRange(event Event) bool {
	return event.Timestamp() >= f.occurredFrom && event.Timestamp() <= f.occurredUntil
}

/***** FilterBuilder *****/

// FilterBuilder builds a Filter for querying an event store.
// It is designed to only allow the combinations which are meaningful for a typed, timestamped event store:
//
//   - (eventType)
//   - (eventType AND occurredAt >= from)
//   - (eventType AND occurredAt <= until)
//   - (eventType AND from <= occurredAt <= until)
type FilterBuilder interface {
	// OfEventType starts the Filter for exactly one event type.
	OfEventType(eventType FilterEventTypeString) FilterBuilderLackingTimeRange
}

type FilterBuilderLackingTimeRange interface {
	// OccurredFrom sets the inclusive lower bound of the time range.
	OccurredFrom(timestamp TimestampInt64) FilterBuilderLackingOccurredUntil

	// OccurredUntil sets the inclusive upper bound of the time range.
	OccurredUntil(timestamp TimestampInt64) CompletedFilterBuilder

	// InTimeRange sets both inclusive bounds of the time range.
	InTimeRange(from TimestampInt64, until TimestampInt64) CompletedFilterBuilder

	// Finalize returns a Filter matching all events of the event type.
	Finalize() Filter
}

type FilterBuilderLackingOccurredUntil interface {
	// AndOccurredUntil sets the inclusive upper bound of the time range.
	AndOccurredUntil(timestamp TimestampInt64) CompletedFilterBuilder

	// Finalize returns the Filter with an open upper bound.
	Finalize() Filter
}

type CompletedFilterBuilder interface {
	// Finalize returns the Filter.
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder
type filterBuilder struct {
	filter Filter
}

// BuildEventFilter creates a FilterBuilder which must eventually be finalized with Finalize().
func BuildEventFilter() FilterBuilder {
	return filterBuilder{
		filter: Filter{
			occurredFrom:  math.MinInt64,
			occurredUntil: math.MaxInt64,
		},
	}
}

// OfEventType starts the Filter for exactly one event type.
func (fb filterBuilder) OfEventType(eventType FilterEventTypeString) FilterBuilderLackingTimeRange {
	fb.filter.eventType = eventType

	return fb
}

// OccurredFrom sets the inclusive lower bound of the time range.
func (fb filterBuilder) OccurredFrom(timestamp TimestampInt64) FilterBuilderLackingOccurredUntil {
	fb.filter.occurredFrom = timestamp

	return fb
}

// OccurredUntil sets the inclusive upper bound of the time range.
func (fb filterBuilder) OccurredUntil(timestamp TimestampInt64) CompletedFilterBuilder {
	fb.filter.occurredUntil = timestamp

	return fb
}

// AndOccurredUntil sets the inclusive upper bound of the time range.
func (fb filterBuilder) AndOccurredUntil(timestamp TimestampInt64) CompletedFilterBuilder {
	return fb.OccurredUntil(timestamp)
}

// InTimeRange sets both inclusive bounds of the time range.
// A range with from > until is kept as is; such a Filter matches nothing.
func (fb filterBuilder) InTimeRange(from TimestampInt64, until TimestampInt64) CompletedFilterBuilder {
	fb.filter.occurredFrom = from
	fb.filter.occurredUntil = until

	return fb
}

// Finalize returns the Filter.
func (fb filterBuilder) Finalize() Filter {
	return fb.filter
}
