package helper

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/smtrad/challenge-eventstore/eventstore"
)

// GivenUniqueEventType returns an event type which no other test uses.
func GivenUniqueEventType(t testing.TB) eventstore.EventTypeString {
	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return "Type-" + id.String()
}

// FixtureEvents builds one event of eventType per timestamp.
func FixtureEvents(eventType eventstore.EventTypeString, timestamps ...eventstore.TimestampInt64) eventstore.Events {
	events := make(eventstore.Events, 0, len(timestamps))
	for _, ts := range timestamps {
		events = append(events, eventstore.NewEvent(eventType, ts))
	}

	return events
}

// GivenEventsWereInserted inserts all events into the store.
func GivenEventsWereInserted(t testing.TB, es eventstore.EventStore, events ...eventstore.Event) {
	t.Helper()

	for _, event := range events {
		es.Insert(event)
	}
}

// GivenRandomEventsWereInserted inserts numEvents events with distinct timestamps in [0, maxTimestamp)
// spread over numTypes event types named "T0".."Tn" and returns them.
func GivenRandomEventsWereInserted(
	t testing.TB,
	es eventstore.EventStore,
	numEvents int,
	numTypes int,
	maxTimestamp int64,
) eventstore.Events {

	t.Helper()
	require.LessOrEqual(t, int64(numEvents), maxTimestamp, "error in arranging test data")

	events := make(eventstore.Events, 0, numEvents)
	for i, ts := range rand.Perm(int(maxTimestamp))[:numEvents] {
		event := eventstore.NewEvent("T"+strconv.Itoa(i%numTypes), int64(ts))
		es.Insert(event)
		events = append(events, event)
	}

	return events
}

// DrainIterator reads all remaining events from the iterator and closes it.
func DrainIterator(t testing.TB, it eventstore.EventIterator) eventstore.Events {
	t.Helper()

	events := make(eventstore.Events, 0)
	for it.MoveNext() {
		events = append(events, it.Current())
	}

	require.NoError(t, it.Close())

	return events
}

// CleanUp closes the iterator, used with t.Cleanup or defer.
func CleanUp(t testing.TB, it eventstore.EventIterator) {
	require.NoError(t, it.Close(), "error in cleaning up the iterator")
}
