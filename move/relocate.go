package move

import (
	"math/rand"

	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// relocate implements M2: pop one entry from a later slot and insert it into
// an earlier one, strictly moving a task earlier in time. Skips if there is
// no earlier slot to move into (T < 2) or the chosen later slot is empty.
func relocate(rng *rand.Rand, s schedule.Schedule) bool {
	if len(s) < 2 {
		return false
	}
	tFrom := 1 + rng.Intn(len(s)-1)
	if len(s[tFrom]) == 0 {
		return false
	}

	idx := rng.Intn(len(s[tFrom]))
	e := s[tFrom][idx]
	s[tFrom] = removeAt(s[tFrom], idx)

	tTo := rng.Intn(tFrom)
	insertIdx := rng.Intn(len(s[tTo]) + 1)
	s[tTo] = insertAt(s[tTo], insertIdx, e)
	return true
}
