// Package prng centralizes the "optional seed" convention used by both
// search drivers: a present seed makes a driver call reproducible; an
// absent one draws from an entropy source. Each driver call owns exactly
// one RNG, created once.
package prng

import (
	"math/rand"
	"time"
)

// New returns a *rand.Rand seeded deterministically from seed if non-nil,
// or from the current time otherwise.
func New(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
