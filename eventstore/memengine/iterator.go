package memengine

import (
	"slices"

	"github.com/smtrad/challenge-eventstore/eventstore"
)

// queryIterator walks a snapshot taken by EventStore.QueryFilter.
//
// States: ready (cursor before an unread element), exhausted (cursor at the end),
// closed (snapshot discarded). lastYielded is the snapshot index of the element most
// recently returned by Current, or noElementYielded.
type queryIterator struct {
	es          *EventStore
	events      eventstore.Events
	cursor      int
	lastYielded int
	closed      bool
}

func newQueryIterator(es *EventStore, snapshot eventstore.Events) *queryIterator {
	return &queryIterator{
		es:          es,
		events:      snapshot,
		lastYielded: noElementYielded,
	}
}

// MoveNext reports whether an unread element exists at the cursor. It does not advance the cursor.
func (it *queryIterator) MoveNext() bool {
	return !it.closed && it.cursor < len(it.events)
}

// Current returns the element at the cursor and advances the cursor by one.
// Past the end, or once closed, it returns the zero Event.
func (it *queryIterator) Current() eventstore.Event {
	if !it.MoveNext() {
		return eventstore.Event{}
	}

	event := it.events[it.cursor]
	it.lastYielded = it.cursor
	it.cursor++

	return event
}

// Remove deletes the element most recently returned by Current from the store and from the snapshot.
//
// The cursor steps back onto the slot the removed element occupied, so the element which
// followed it is yielded next, neither skipped nor repeated.
func (it *queryIterator) Remove() error {
	if it.cursor == 0 || it.lastYielded == noElementYielded {
		return eventstore.ErrUnsupportedOperation
	}

	event := it.events[it.lastYielded]
	it.events = slices.Delete(it.events, it.lastYielded, it.lastYielded+1)
	it.cursor = it.lastYielded
	it.lastYielded = noElementYielded

	it.es.removeYielded(event)

	return nil
}

// Close discards the snapshot and resets the cursor.
func (it *queryIterator) Close() error {
	it.events = nil
	it.cursor = 0
	it.lastYielded = noElementYielded
	it.closed = true

	return nil
}

// Ensure queryIterator implements eventstore.EventIterator.
var _ eventstore.EventIterator = (*queryIterator)(nil)
