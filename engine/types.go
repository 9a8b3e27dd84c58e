// Package engine wires the DAG builder, greedy constructor, both search
// drivers, and the ILP reference oracle behind one request/response surface,
// performing the input validation the core packages assume already
// happened. The HTTP façade, CORS, and streaming progress a host might add
// around this package are out of scope.
package engine

import (
	"github.com/hashicorp/go-hclog"

	"github.com/Xhst/dssa-multiagent-scheduling/config"
	"github.com/Xhst/dssa-multiagent-scheduling/metrics"
	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// Method selects which of the four scheduling methods a Request runs.
type Method string

const (
	MethodGreedy      Method = "greedy"
	MethodLocalSearch Method = "local-search"
	MethodAnneal      Method = "anneal"
	MethodILP         Method = "ilp"
)

// AgentSpec is one agent's task sizes, intra-agent dependencies, and the
// UI-only Color hint carried through from the original app.py response
// envelope — opaque passthrough data the engine never interprets.
type AgentSpec struct {
	TaskSizes    []int
	Dependencies [][]int
	Color        string
}

// Request is the complete input to Run: the resource profile, every agent's
// task graph, which method to run, and the heuristic parameters that method
// needs. RunID is generated when empty so concurrent Run calls remain
// distinguishable in shared log output.
type Request struct {
	RunID     string
	Resources []int
	Agents    []AgentSpec
	Method    Method
	Heuristic config.Heuristic
	NodeLimit int // oracle-only: branch-and-bound node budget, 0 = default

	Logger  hclog.Logger
	Metrics *metrics.Collectors
}

// Result is the host-agnostic response envelope, mirroring app.py's
// per-method {method, solution, z, time, colors, resources} shape.
type Result struct {
	RunID          string
	Method         Method
	Schedule       schedule.Schedule
	Z              float64
	Colors         []string
	Resources      []int
	ElapsedSeconds float64
}
