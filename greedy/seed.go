// Package greedy implements the topological largest-first constructor that
// produces the initial feasible schedule both drivers start from.
package greedy

import (
	"sort"

	"github.com/samber/lo"

	"github.com/Xhst/dssa-multiagent-scheduling/dag"
	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// candidate is a ready task eligible for placement in the current slot.
type candidate struct {
	agent, task, size int
}

// Seed builds the initial schedule: for each slot in order, repeatedly place
// the largest ready task that still fits the slot's remaining capacity,
// breaking ties by (agent, task) for reproducibility.
//
// The second return value reports coverage: whether every task across every
// agent was placed. The caller (the engine package) is responsible for
// treating coverage == false as an infeasible-input error; Seed itself
// always returns the partial schedule it managed to build.
func Seed(resources []int, graphs []*dag.Graph) (schedule.Schedule, bool) {
	numAgents := len(graphs)
	ready := make([]map[int]struct{}, numAgents)
	remainingIndegree := make([][]int, numAgents)

	totalTasks := 0
	for k, g := range graphs {
		ready[k] = make(map[int]struct{})
		remainingIndegree[k] = make([]int, g.N())
		for i := 0; i < g.N(); i++ {
			remainingIndegree[k][i] = g.Indegree(i)
			if g.Indegree(i) == 0 {
				ready[k][i] = struct{}{}
			}
		}
		totalTasks += g.N()
	}

	s := schedule.New(len(resources))
	placed := 0

	for t, cap := range resources {
		rem := cap
		for {
			candidates := collectCandidates(graphs, ready, rem)
			if len(candidates) == 0 {
				break
			}

			chosen := pickLargest(candidates)
			s[t] = append(s[t], schedule.Entry{AgentID: chosen.agent, TaskID: chosen.task})
			rem -= chosen.size
			placed++
			delete(ready[chosen.agent], chosen.task)

			for _, succ := range graphs[chosen.agent].Successors(chosen.task) {
				remainingIndegree[chosen.agent][succ]--
				if remainingIndegree[chosen.agent][succ] == 0 {
					ready[chosen.agent][succ] = struct{}{}
				}
			}
		}
	}

	return s, placed == totalTasks
}

// collectCandidates gathers every ready task across every agent whose size
// fits the remaining capacity, filtering with lo.Filter to keep the scan
// declarative instead of three nested hand-rolled loops.
func collectCandidates(graphs []*dag.Graph, ready []map[int]struct{}, rem int) []candidate {
	var all []candidate
	for k, readySet := range ready {
		tasks := make([]int, 0, len(readySet))
		for i := range readySet {
			tasks = append(tasks, i)
		}
		sort.Ints(tasks)
		for _, i := range tasks {
			all = append(all, candidate{agent: k, task: i, size: graphs[k].Size(i)})
		}
	}
	return lo.Filter(all, func(c candidate, _ int) bool { return c.size <= rem })
}

// pickLargest returns the candidate with the largest size, breaking ties by
// (agent, task) lexicographic order.
func pickLargest(candidates []candidate) candidate {
	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].size != candidates[b].size {
			return candidates[a].size > candidates[b].size
		}
		if candidates[a].agent != candidates[b].agent {
			return candidates[a].agent < candidates[b].agent
		}
		return candidates[a].task < candidates[b].task
	})
	return candidates[0]
}
