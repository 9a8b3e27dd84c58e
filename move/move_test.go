package move_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xhst/dssa-multiagent-scheduling/move"
	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

func constSize(n int) move.SizeFunc {
	return func(schedule.Entry) int { return n }
}

func TestApply_SkipsOnEmptySchedule(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := schedule.New(3)
	// every branch should cleanly report false on an all-empty schedule
	for i := 0; i < 50; i++ {
		ok := move.Apply(rng, s, constSize(1))
		assert.False(t, ok)
	}
}

func TestApply_DeterministicUnderSeed(t *testing.T) {
	build := func() schedule.Schedule {
		return schedule.Schedule{
			{{AgentID: 0, TaskID: 0}, {AgentID: 0, TaskID: 1}},
			{{AgentID: 1, TaskID: 0}, {AgentID: 1, TaskID: 1}},
			{{AgentID: 0, TaskID: 2}},
		}
	}

	sizeOf := constSize(1)

	s1 := build()
	rng1 := rand.New(rand.NewSource(515125))
	for i := 0; i < 20; i++ {
		move.Apply(rng1, s1, sizeOf)
	}

	s2 := build()
	rng2 := rand.New(rand.NewSource(515125))
	for i := 0; i < 20; i++ {
		move.Apply(rng2, s2, sizeOf)
	}

	require.Equal(t, s1, s2)
}

func TestApply_NeverChangesTaskCount(t *testing.T) {
	s := schedule.Schedule{
		{{AgentID: 0, TaskID: 0}, {AgentID: 0, TaskID: 1}, {AgentID: 0, TaskID: 2}},
		{{AgentID: 1, TaskID: 0}, {AgentID: 1, TaskID: 1}},
		{},
	}
	before := s.TaskCount()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		move.Apply(rng, s, constSize(1))
		require.Equal(t, before, s.TaskCount())
	}
}
