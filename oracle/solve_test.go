package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Xhst/dssa-multiagent-scheduling/dag"
	"github.com/Xhst/dssa-multiagent-scheduling/feasibility"
	"github.com/Xhst/dssa-multiagent-scheduling/greedy"
	"github.com/Xhst/dssa-multiagent-scheduling/objective"
	"github.com/Xhst/dssa-multiagent-scheduling/oracle"
)

func TestSolve_S1SingleAgentNoDeps(t *testing.T) {
	resources := []int{3}
	graphs, err := dag.Build([][]int{{1, 1, 1}}, nil)
	require.NoError(t, err)

	result := oracle.Solve(resources, graphs, 0)
	require.Equal(t, oracle.StatusOptimal, result.Status)
	require.Equal(t, 1.0, result.Z) // all three tasks fit slot 1
	require.True(t, feasibility.Check(result.Schedule, graphs, resources))
}

func TestSolve_LinearChainForcesSpread(t *testing.T) {
	resources := []int{2, 2, 2}
	graphs, err := dag.Build([][]int{{2, 2, 2}}, [][][]int{{nil, {0}, {1}}})
	require.NoError(t, err)

	result := oracle.Solve(resources, graphs, 0)
	require.Equal(t, oracle.StatusOptimal, result.Status)
	require.Equal(t, 2.0, result.Z) // (1+2+3)/3
	require.True(t, feasibility.Check(result.Schedule, graphs, resources))
}

func TestSolve_InsufficientCapacityIsInfeasible(t *testing.T) {
	resources := []int{1}
	graphs, err := dag.Build([][]int{{5}}, nil)
	require.NoError(t, err)

	result := oracle.Solve(resources, graphs, 0)
	require.Equal(t, oracle.StatusInfeasible, result.Status)
}

func TestSolve_LowerBoundsGreedyOnRepositoryExample(t *testing.T) {
	resources := []int{15, 8, 5}
	graphs, err := dag.Build(
		[][]int{{1, 5, 1, 1, 1, 1, 1, 1}, {5, 6, 1}},
		[][][]int{
			{nil, {0}, {1}, {1}, {1}, {1}, {1}, {1}},
			{nil, nil, {0, 1}},
		},
	)
	require.NoError(t, err)

	result := oracle.Solve(resources, graphs, 500_000)
	require.Equal(t, oracle.StatusOptimal, result.Status)
	require.True(t, feasibility.Check(result.Schedule, graphs, resources))

	seed, covered := greedy.Seed(resources, graphs)
	require.True(t, covered)
	require.LessOrEqual(t, result.Z, objective.Evaluate(seed, len(graphs)))
}
