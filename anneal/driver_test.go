package anneal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Xhst/dssa-multiagent-scheduling/anneal"
	"github.com/Xhst/dssa-multiagent-scheduling/dag"
	"github.com/Xhst/dssa-multiagent-scheduling/feasibility"
	"github.com/Xhst/dssa-multiagent-scheduling/greedy"
	"github.com/Xhst/dssa-multiagent-scheduling/objective"
)

func seedParam(v int64) *int64 { return &v }

func TestRun_BestNeverWorseThanGreedySeed(t *testing.T) {
	resources := []int{15, 8, 5}
	graphs, err := dag.Build(
		[][]int{{1, 5, 1, 1, 1, 1, 1, 1}, {5, 6, 1}},
		[][][]int{
			{nil, {0}, {1}, {1}, {1}, {1}, {1}, {1}},
			{nil, nil, {0, 1}},
		},
	)
	require.NoError(t, err)

	seed, covered := greedy.Seed(resources, graphs)
	require.True(t, covered)
	seedCost := objective.Evaluate(seed, len(graphs))

	result, err := anneal.Run(resources, graphs, anneal.Params{
		MaxIter:        2000,
		CandidateMoves: 300,
		InitialTemp:    1.0,
		CoolingRate:    0.99,
		Seed:           seedParam(11),
	})
	require.NoError(t, err)

	require.True(t, feasibility.Check(result, graphs, resources))
	require.Equal(t, seed.TaskCount(), result.TaskCount())
	require.LessOrEqual(t, objective.Evaluate(result, len(graphs)), seedCost)
}

func TestRun_DeterministicUnderSeed(t *testing.T) {
	resources := []int{6, 6}
	graphs, err := dag.Build([][]int{{2, 2, 2}, {3, 3}}, nil)
	require.NoError(t, err)

	params := anneal.Params{
		MaxIter:        500,
		CandidateMoves: 100,
		InitialTemp:    1.0,
		CoolingRate:    0.95,
		Seed:           seedParam(2024),
	}

	r1, err := anneal.Run(resources, graphs, params)
	require.NoError(t, err)
	r2, err := anneal.Run(resources, graphs, params)
	require.NoError(t, err)

	require.Equal(t, r1, r2)
}

func TestRun_RejectsUnschedulableInput(t *testing.T) {
	resources := []int{1}
	graphs, err := dag.Build([][]int{{5}}, nil)
	require.NoError(t, err)

	_, err = anneal.Run(resources, graphs, anneal.Params{
		MaxIter: 10, CandidateMoves: 10, InitialTemp: 1.0, CoolingRate: 0.9,
	})
	require.ErrorIs(t, err, anneal.ErrUnschedulable)
}
