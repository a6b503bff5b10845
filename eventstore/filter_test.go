package eventstore_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smtrad/challenge-eventstore/eventstore"
)

//nolint:funlen
func Test_FilterBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() eventstore.Filter
		validate func(t *testing.T, filter eventstore.Filter)
	}{
		{
			name: "event_type_only_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					OfEventType("A").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Equal(t, "A", f.EventType())
				assert.Equal(t, int64(math.MinInt64), f.OccurredFrom())
				assert.Equal(t, int64(math.MaxInt64), f.OccurredUntil())
				assert.False(t, f.HasEmptyTimeRange())
			},
		},
		{
			name: "occurred_from_only_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					OfEventType("A").
					OccurredFrom(10).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Equal(t, int64(10), f.OccurredFrom())
				assert.Equal(t, int64(math.MaxInt64), f.OccurredUntil())
			},
		},
		{
			name: "occurred_until_only_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					OfEventType("A").
					OccurredUntil(20).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Equal(t, int64(math.MinInt64), f.OccurredFrom())
				assert.Equal(t, int64(20), f.OccurredUntil())
			},
		},
		{
			name: "occurred_from_and_until_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					OfEventType("A").
					OccurredFrom(10).
					AndOccurredUntil(20).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Equal(t, int64(10), f.OccurredFrom())
				assert.Equal(t, int64(20), f.OccurredUntil())
			},
		},
		{
			name: "in_time_range_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					OfEventType("A").
					InTimeRange(-5, 5).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Equal(t, int64(-5), f.OccurredFrom())
				assert.Equal(t, int64(5), f.OccurredUntil())
			},
		},
		{
			name: "inverted_time_range_is_kept_and_empty",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					OfEventType("A").
					InTimeRange(5, -5).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Equal(t, int64(5), f.OccurredFrom())
				assert.Equal(t, int64(-5), f.OccurredUntil())
				assert.True(t, f.HasEmptyTimeRange())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.build()
			tt.validate(t, filter)
		})
	}
}

func Test_FilterBuilder_IsImmutable(t *testing.T) {
	base := eventstore.BuildEventFilter().OfEventType("A")

	narrow := base.InTimeRange(1, 2).Finalize()
	open := base.Finalize()

	assert.Equal(t, int64(1), narrow.OccurredFrom())
	assert.Equal(t, int64(math.MinInt64), open.OccurredFrom(), "deriving a filter must not change the builder it came from")
}

func Test_Filter_Matches(t *testing.T) {
	filter := eventstore.BuildEventFilter().
		OfEventType("A").
		InTimeRange(10, 20).
		Finalize()

	tests := []struct {
		name     string
		event    eventstore.Event
		expected bool
	}{
		{name: "lower_bound_inclusive", event: eventstore.NewEvent("A", 10), expected: true},
		{name: "upper_bound_inclusive", event: eventstore.NewEvent("A", 20), expected: true},
		{name: "inside", event: eventstore.NewEvent("A", 15), expected: true},
		{name: "below", event: eventstore.NewEvent("A", 9), expected: false},
		{name: "above", event: eventstore.NewEvent("A", 21), expected: false},
		{name: "other_type", event: eventstore.NewEvent("B", 15), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Matches(tt.event))
		})
	}

	assert.True(t, filter.MatchesTimeRange(eventstore.NewEvent("B", 15)), "time range matching ignores the type")
}
