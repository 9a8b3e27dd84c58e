package dag

import "github.com/Xhst/dssa-multiagent-scheduling/schedule"

// SizeOf adapts a set of per-agent Graphs into a move.SizeFunc-shaped
// closure: the size of the task a schedule.Entry refers to.
func SizeOf(graphs []*Graph) func(schedule.Entry) int {
	return func(e schedule.Entry) int {
		return graphs[e.AgentID].Size(e.TaskID)
	}
}
