package move

import (
	"math/rand"

	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// swap implements M1: pick two distinct slots and swap one entry between
// them at uniformly random positions. Skips (returns false) if the two
// slots happen to be the same index, or if either is empty.
func swap(rng *rand.Rand, s schedule.Schedule) bool {
	t1 := rng.Intn(len(s))
	t2 := rng.Intn(len(s))
	if t1 == t2 {
		return false
	}
	if len(s[t1]) == 0 || len(s[t2]) == 0 {
		return false
	}

	idx1 := rng.Intn(len(s[t1]))
	idx2 := rng.Intn(len(s[t2]))
	s[t1][idx1], s[t2][idx2] = s[t2][idx2], s[t1][idx1]
	return true
}
