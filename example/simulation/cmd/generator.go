package main

import (
	"math/rand/v2"
	"sync"

	"github.com/smtrad/challenge-eventstore/eventstore"
)

// eventGenerator draws random events and never hands out the same (type, timestamp) pair twice.
type eventGenerator struct {
	mu           sync.Mutex
	rng          *rand.Rand
	eventTypes   []string
	maxTimestamp int64
	issued       map[eventstore.Event]struct{}
}

func newEventGenerator(seed uint64, eventTypes []string, maxTimestamp int64) *eventGenerator {
	return &eventGenerator{
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		eventTypes:   eventTypes,
		maxTimestamp: maxTimestamp,
		issued:       make(map[eventstore.Event]struct{}),
	}
}

// capacity is the number of distinct events the generator can hand out.
func (g *eventGenerator) capacity() int64 {
	return int64(len(g.eventTypes)) * g.maxTimestamp
}

// next returns a fresh event and whether its task should remove it, drawn with removeProbability.
// It returns false once all distinct events have been issued.
func (g *eventGenerator) next(removeProbability float64) (eventstore.Event, bool, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if int64(len(g.issued)) >= g.capacity() {
		return eventstore.Event{}, false, false
	}

	for {
		event := eventstore.NewEvent(
			g.eventTypes[g.rng.IntN(len(g.eventTypes))],
			g.rng.Int64N(g.maxTimestamp),
		)

		if _, taken := g.issued[event]; taken {
			continue
		}

		g.issued[event] = struct{}{}

		return event, g.rng.Float64() < removeProbability, true
	}
}
