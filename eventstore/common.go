package eventstore

import (
	"errors"
)

// ErrUnsupportedOperation is returned by EventIterator.Remove when there is no yielded element to remove.
var ErrUnsupportedOperation = errors.New("unsupported operation: no element has been consumed from this iterator")

var ErrEmptyStoreName = errors.New("empty store name supplied")
var ErrInvalidEventJSON = errors.New("event json is not valid")

// CountInt64 is a type alias for int64, representing the number of events held by a store.
type CountInt64 = int64
