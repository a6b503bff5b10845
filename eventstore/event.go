package eventstore

import (
	"errors"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// EventTypeString is a type alias for string, representing the type label of an Event.
type EventTypeString = string

// TimestampInt64 is a type alias for int64, representing the point in time an Event occurred at.
type TimestampInt64 = int64

// Events is an alias type for a slice of Event.
type Events = []Event

// Event is an immutable value consisting of a type label and a timestamp.
//
// Two events are equal if and only if both fields are equal, which is exactly Go's struct equality.
// Event is comparable and can therefore be used as a map key; an EventStore holds at most one
// entry per distinct (type, timestamp) pair.
//
// The zero Event has an empty type and timestamp 0. It is what EventIterator.Current returns
// when called past the end of a snapshot.
type Event struct {
	eventType EventTypeString
	timestamp TimestampInt64
}

// NewEvent is a factory method for Event.
func NewEvent(eventType EventTypeString, timestamp TimestampInt64) Event {
	return Event{
		eventType: eventType,
		timestamp: timestamp,
	}
}

// Type returns the type label of the Event.
func (e Event) Type() EventTypeString {
	return e.eventType
}

// Timestamp returns the timestamp of the Event.
func (e Event) Timestamp() TimestampInt64 {
	return e.timestamp
}

// IsZero reports whether e is the zero Event.
func (e Event) IsZero() bool {
	return e == Event{}
}

// String renders the Event as "type@timestamp", mainly for log output.
func (e Event) String() string {
	return e.eventType + "@" + strconv.FormatInt(e.timestamp, 10)
}

// eventJSON is the wire shape of an Event.
type eventJSON struct {
	Type      EventTypeString `json:"type"`
	Timestamp TimestampInt64  `json:"timestamp"`
}

// MarshalJSON encodes the Event as {"type": ..., "timestamp": ...}.
func (e Event) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(eventJSON{Type: e.eventType, Timestamp: e.timestamp})
}

// UnmarshalJSON decodes an Event from {"type": ..., "timestamp": ...}.
// It returns ErrInvalidEventJSON if the input is malformed or the type is missing.
func (e *Event) UnmarshalJSON(data []byte) error {
	var decoded eventJSON
	if err := jsoniter.ConfigFastest.Unmarshal(data, &decoded); err != nil {
		return errors.Join(ErrInvalidEventJSON, err)
	}

	if decoded.Type == "" {
		return ErrInvalidEventJSON
	}

	*e = NewEvent(decoded.Type, decoded.Timestamp)

	return nil
}
