package dag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xhst/dssa-multiagent-scheduling/dag"
)

func TestBuild_LinearChain(t *testing.T) {
	graphs, err := dag.Build(
		[][]int{{2, 2}},
		[][][]int{{{}, {0}}},
	)
	require.NoError(t, err)
	require.Len(t, graphs, 1)

	g := graphs[0]
	assert.Equal(t, 2, g.N())
	assert.Equal(t, 0, g.Indegree(0))
	assert.Equal(t, 1, g.Indegree(1))
	assert.Equal(t, []int{1}, g.Successors(0))
	assert.Equal(t, [][2]int{{0, 1}}, g.Edges())
}

func TestBuild_AllIndependent(t *testing.T) {
	graphs, err := dag.Build(
		[][]int{{1, 1}, {1, 1}},
		[][][]int{{{}, {}}, {{}, {}}},
	)
	require.NoError(t, err)
	for _, g := range graphs {
		assert.Equal(t, 0, g.Indegree(0))
		assert.Equal(t, 0, g.Indegree(1))
		assert.Empty(t, g.Edges())
	}
}

func TestBuild_EmptyDependencyListIsValid(t *testing.T) {
	_, err := dag.Build([][]int{{3}}, [][][]int{{nil}})
	require.NoError(t, err)
}

func TestBuild_RejectsCycle(t *testing.T) {
	_, err := dag.Build(
		[][]int{{1, 1}},
		[][][]int{{{1}, {0}}},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dag.ErrCycle))
}

func TestBuild_RejectsSelfLoop(t *testing.T) {
	_, err := dag.Build([][]int{{1}}, [][][]int{{{0}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dag.ErrSelfLoop))
}

func TestBuild_RejectsOutOfRangeDependency(t *testing.T) {
	_, err := dag.Build([][]int{{1, 1}}, [][][]int{{{}, {5}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dag.ErrDependencyRange))
}

func TestBuild_RejectsNonPositiveSize(t *testing.T) {
	_, err := dag.Build([][]int{{0}}, [][][]int{{{}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dag.ErrBadSize))
}

func TestBuild_AggregatesMultipleErrors(t *testing.T) {
	// Two independent problems in the same agent: a bad size and an
	// out-of-range dependency. Both must surface, not just the first.
	_, err := dag.Build([][]int{{0, 1}}, [][][]int{{{}, {9}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dag.ErrBadSize))
	assert.True(t, errors.Is(err, dag.ErrDependencyRange))
}
