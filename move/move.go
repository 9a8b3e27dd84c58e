// Package move implements a three-move stochastic neighborhood: swap,
// relocate, and multi-swap. Every move operates on a Schedule already
// materialized as a private copy by the caller (the local search and
// annealing drivers); a move that cannot be applied — an empty slot,
// identical slots, no valid target — returns ok=false and leaves the
// schedule untouched.
package move

import (
	"math/rand"

	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// SizeFunc resolves the size of an entry; the multi-swap move needs it to
// match a single task's size against a candidate group's total size.
type SizeFunc func(e schedule.Entry) int

// Apply draws a uniform variate and dispatches to one of the three moves
// (u < 1/3, 1/3 <= u < 2/3, u >= 2/3). It mutates s in place and reports
// whether a move was actually applied.
func Apply(rng *rand.Rand, s schedule.Schedule, sizeOf SizeFunc) bool {
	u := rng.Float64()
	switch {
	case u < 1.0/3.0:
		return swap(rng, s)
	case u < 2.0/3.0:
		return relocate(rng, s)
	default:
		return multiSwap(rng, s, sizeOf)
	}
}

// insertAt returns slot with entry inserted at position idx, shifting
// subsequent entries right. idx may equal len(slot) to append.
func insertAt(slot schedule.Slot, idx int, e schedule.Entry) schedule.Slot {
	slot = append(slot, schedule.Entry{})
	copy(slot[idx+1:], slot[idx:])
	slot[idx] = e
	return slot
}

// removeAt returns slot with the entry at idx removed.
func removeAt(slot schedule.Slot, idx int) schedule.Slot {
	return append(slot[:idx], slot[idx+1:]...)
}
