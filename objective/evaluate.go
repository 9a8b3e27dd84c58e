// Package objective implements the scalar cost function every driver
// minimizes: the maximum, over agents, of that agent's mean completion slot
// (1-indexed).
package objective

import (
	"math"

	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// Evaluate computes max_k (sum of (t+1) for every task of agent k at slot t)
// / count_k, iterating slots in 1-indexed order. An agent with zero
// scheduled tasks contributes +Inf rather than crashing — such agents are
// rejected at input validation, but the evaluator itself must never divide
// by zero.
func Evaluate(s schedule.Schedule, numAgents int) float64 {
	sums := make([]int, numAgents)
	counts := make([]int, numAgents)

	for t, slot := range s {
		for _, e := range slot {
			sums[e.AgentID] += t + 1
			counts[e.AgentID]++
		}
	}

	max := math.Inf(-1)
	for k := 0; k < numAgents; k++ {
		var cost float64
		if counts[k] == 0 {
			cost = math.Inf(1)
		} else {
			cost = float64(sums[k]) / float64(counts[k])
		}
		if cost > max {
			max = cost
		}
	}
	return max
}
