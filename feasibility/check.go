// Package feasibility verifies that a Schedule respects the capacity,
// uniqueness, and precedence invariants a schedule must hold. It never
// verifies coverage (every task scheduled) — that is a structural invariant
// the greedy seed guarantees and no move can violate.
package feasibility

import (
	"errors"

	"github.com/Xhst/dssa-multiagent-scheduling/dag"
	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// ErrInfeasible is returned by CheckErr (but never by Check, which is a
// plain boolean predicate).
var ErrInfeasible = errors.New("feasibility: schedule violates capacity, uniqueness, or precedence")

// Check reports whether s is feasible against graphs and per-slot
// capacities c: capacity first, then uniqueness (via schedule.Positions),
// then precedence.
func Check(s schedule.Schedule, graphs []*dag.Graph, c []int) bool {
	if len(s) != len(c) {
		return false
	}

	for t, slot := range s {
		total := 0
		for _, e := range slot {
			total += graphs[e.AgentID].Size(e.TaskID)
		}
		if total > c[t] {
			return false
		}
	}

	pos, ok := schedule.Positions(s)
	if !ok {
		return false
	}

	for k, g := range graphs {
		for _, edge := range g.Edges() {
			u, v := edge[0], edge[1]
			pu, uok := pos[schedule.Entry{AgentID: k, TaskID: u}]
			pv, vok := pos[schedule.Entry{AgentID: k, TaskID: v}]
			if !uok || !vok {
				return false
			}
			if !pu.Less(pv) {
				return false
			}
		}
	}

	return true
}

// CheckErr wraps Check in the sentinel-error idiom used elsewhere in the
// engine, for callers that want an error rather than a bool.
func CheckErr(s schedule.Schedule, graphs []*dag.Graph, c []int) error {
	if Check(s, graphs, c) {
		return nil
	}
	return ErrInfeasible
}
