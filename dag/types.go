// Package dag models the per-agent task graph: integer-sized nodes,
// intra-agent precedence edges, and the indegree bookkeeping the greedy
// constructor and the reference oracle both depend on.
//
// A Graph is built once per engine request and is read-only for the rest of
// the call; there is no mutation API beyond Build.
package dag

import "errors"

// Sentinel errors for DAG construction. Callers branch on these with
// errors.Is, never by message text.
var (
	// ErrDependencyRange indicates a dependency index outside [0, N_k).
	ErrDependencyRange = errors.New("dag: dependency index out of range")

	// ErrSelfLoop indicates a task listed as its own dependency.
	ErrSelfLoop = errors.New("dag: self-loop dependency")

	// ErrCycle indicates the dependency graph for an agent is not acyclic.
	ErrCycle = errors.New("dag: dependency graph contains a cycle")

	// ErrBadSize indicates a task size below the minimum of 1.
	ErrBadSize = errors.New("dag: task size must be >= 1")
)

// Graph is the DAG for a single agent: node sizes plus forward (successors)
// and backward (indegree) edge bookkeeping, both precomputed as dense slices
// to keep the inner loops of the search drivers allocation-free.
type Graph struct {
	sizes      []int   // sizes[i] = size of task i
	successors [][]int // successors[i] = sorted list of tasks depending on i
	indegree   []int   // indegree[i] = number of dependencies of i
	edges      [][2]int
}

// N returns the number of tasks in the graph.
func (g *Graph) N() int { return len(g.sizes) }

// Size returns the size of task i.
func (g *Graph) Size(i int) int { return g.sizes[i] }

// Successors returns the tasks that depend directly on task i.
func (g *Graph) Successors(i int) []int { return g.successors[i] }

// Indegree returns the number of unresolved dependencies task i starts with.
func (g *Graph) Indegree(i int) int { return g.indegree[i] }

// Edges returns every (u, v) dependency edge (u must precede v) in the graph.
func (g *Graph) Edges() [][2]int { return g.edges }
