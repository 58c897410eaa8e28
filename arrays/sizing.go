package arrays

import "math"

// GrowCapacity returns the capacity that follows old when the buffer is full.
//
// The rule is old + old/2 + 1, which is roughly 1.5x but keeps the early
// increments small. Returns 0 if the result would overflow int.
func GrowCapacity(old int) int {
	if old < 0 {
		return 0
	}
	inc := old/2 + 1
	if old > math.MaxInt-inc {
		return 0
	}
	return old + inc
}

// CapacityFor returns the smallest capacity reachable from current by
// repeated application of GrowCapacity that is at least need.
//
// current is returned unchanged when it already satisfies need.
func CapacityFor(current, need int) (int, error) {
	if current < 1 {
		current = 1
	}
	for current < need {
		next := GrowCapacity(current)
		if next == 0 {
			return 0, ErrCapacityOverflow
		}
		current = next
	}
	return current, nil
}
