package lru

import (
	"errors"
	"math"
)

// MaxCapacity is the largest capacity New accepts. Slots are addressed by
// int32 and the arena needs two sentinels plus one spare slot.
const MaxCapacity = math.MaxInt32 - 3

// ErrInvalidCapacity is returned by New when the capacity is below one or
// above MaxCapacity.
var ErrInvalidCapacity = errors.New("lru: capacity out of range")

// invariantError reports a desynchronised index and recency list. It is only
// ever raised through panic.
type invariantError string

func (e invariantError) Error() string {
	return "lru: invariant violated: " + string(e)
}
