package move

import (
	"math/rand"
	"sort"

	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// maxGroupTries bounds the search for a subset of S[t_to] whose total size
// matches the single task being displaced from S[t_from].
const maxGroupTries = 50

// multiSwap implements M3: swap one task in t_from for a group of two or
// more tasks in some other slot t_to whose sizes sum to exactly the size of
// the displaced task.
//
// Ordering: the group is popped from t_to in descending index order, then
// re-inserted into t_from one element at a time, always at the displaced
// task's former position — a repeated insert-at-the-same-index, which
// composes with the descending collection order to reproduce the group's
// original relative order from t_to at the insertion site. This mirrors the
// Python source's list.insert sequence exactly rather than a simplified
// reconstruction, because the ordering affects precedence feasibility
// within a slot.
func multiSwap(rng *rand.Rand, s schedule.Schedule, sizeOf SizeFunc) bool {
	T := len(s)
	tFrom := rng.Intn(T)
	if len(s[tFrom]) == 0 {
		return false
	}

	idxFrom := rng.Intn(len(s[tFrom]))
	taskFrom := s[tFrom][idxFrom]
	sizeFrom := sizeOf(taskFrom)

	var validTo []int
	for t := 0; t < T; t++ {
		if t != tFrom && len(s[t]) >= 2 {
			validTo = append(validTo, t)
		}
	}
	if len(validTo) == 0 {
		return false
	}
	tTo := validTo[rng.Intn(len(validTo))]

	group := findMatchingGroup(rng, s[tTo], sizeFrom, sizeOf)
	if group == nil {
		return false
	}

	// Collect the group's entries in descending-index order, then pop them
	// from t_to in that same order so earlier-collected indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(group)))
	groupTasks := make([]schedule.Entry, len(group))
	for i, idx := range group {
		groupTasks[i] = s[tTo][idx]
	}
	for _, idx := range group {
		s[tTo] = removeAt(s[tTo], idx)
	}

	s[tFrom] = removeAt(s[tFrom], idxFrom)
	for _, task := range groupTasks {
		s[tFrom] = insertAt(s[tFrom], idxFrom, task)
	}

	insertIdx := rng.Intn(len(s[tTo]) + 1)
	s[tTo] = insertAt(s[tTo], insertIdx, taskFrom)
	return true
}

// findMatchingGroup tries up to maxGroupTries random subsets (size 2..len)
// of slot, returning the indices of the first whose total size equals
// target, or nil if none is found.
func findMatchingGroup(rng *rand.Rand, slot schedule.Slot, target int, sizeOf SizeFunc) []int {
	n := len(slot)
	for try := 0; try < maxGroupTries; try++ {
		groupSize := 2 + rng.Intn(n-1)
		indices := sampleIndices(rng, n, groupSize)

		total := 0
		for _, idx := range indices {
			total += sizeOf(slot[idx])
		}
		if total == target {
			return indices
		}
	}
	return nil
}

// sampleIndices returns k distinct indices drawn uniformly at random, without
// replacement, from [0, n), via a partial Fisher-Yates shuffle.
func sampleIndices(rng *rand.Rand, n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return append([]int(nil), pool[:k]...)
}
