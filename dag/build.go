package dag

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Build constructs one Graph per agent from parallel agentTasks/dependencies
// slices.
//
// agentTasks[k] is the ordered list of task sizes for agent k.
// dependencies[k][i] is the set of task indices that must precede task i of
// agent k. Every malformed entry (out-of-range index, self-loop, size < 1)
// across every agent is collected and returned together via
// hashicorp/go-multierror, rather than failing on the first one, so a caller
// fixing a bad request sees every problem at once.
func Build(agentTasks [][]int, dependencies [][][]int) ([]*Graph, error) {
	graphs := make([]*Graph, len(agentTasks))
	var errs *multierror.Error

	for k, sizes := range agentTasks {
		n := len(sizes)
		g := &Graph{
			sizes:      append([]int(nil), sizes...),
			successors: make([][]int, n),
			indegree:   make([]int, n),
		}

		var deps [][]int
		if k < len(dependencies) {
			deps = dependencies[k]
		}

		for i, size := range sizes {
			if size < 1 {
				errs = multierror.Append(errs, fmt.Errorf("agent %d task %d: %w (got %d)", k, i, ErrBadSize, size))
			}
		}

		for i := 0; i < n; i++ {
			var dependsOn []int
			if i < len(deps) {
				dependsOn = deps[i]
			}
			for _, dep := range dependsOn {
				if dep == i {
					errs = multierror.Append(errs, fmt.Errorf("agent %d task %d: %w", k, i, ErrSelfLoop))
					continue
				}
				if dep < 0 || dep >= n {
					errs = multierror.Append(errs, fmt.Errorf("agent %d task %d: %w (dep %d, N=%d)", k, i, ErrDependencyRange, dep, n))
					continue
				}
				g.successors[dep] = append(g.successors[dep], i)
				g.indegree[i]++
				g.edges = append(g.edges, [2]int{dep, i})
			}
		}

		for i := range g.successors {
			sort.Ints(g.successors[i])
		}
		sort.Slice(g.edges, func(a, b int) bool {
			if g.edges[a][0] != g.edges[b][0] {
				return g.edges[a][0] < g.edges[b][0]
			}
			return g.edges[a][1] < g.edges[b][1]
		})

		if errs == nil || errs.Len() == 0 {
			if cyc := findCycle(g); cyc {
				errs = multierror.Append(errs, fmt.Errorf("agent %d: %w", k, ErrCycle))
			}
		}

		graphs[k] = g
	}

	if errs != nil && errs.Len() > 0 {
		return nil, errs.ErrorOrNil()
	}
	return graphs, nil
}

// findCycle reports whether g's dependency graph contains a cycle, using the
// standard white/gray/black DFS coloring.
func findCycle(g *Graph) bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]int, g.N())

	var visit func(i int) bool
	visit = func(i int) bool {
		color[i] = gray
		for _, j := range g.successors[i] {
			switch color[j] {
			case gray:
				return true
			case white:
				if visit(j) {
					return true
				}
			}
		}
		color[i] = black
		return false
	}

	for i := 0; i < g.N(); i++ {
		if color[i] == white {
			if visit(i) {
				return true
			}
		}
	}
	return false
}
