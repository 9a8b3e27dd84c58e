package objective_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xhst/dssa-multiagent-scheduling/objective"
	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

func TestEvaluate_S1(t *testing.T) {
	s := schedule.Schedule{
		{{AgentID: 0, TaskID: 0}, {AgentID: 0, TaskID: 1}},
	}
	assert.Equal(t, 1.0, objective.Evaluate(s, 1))
}

func TestEvaluate_S2(t *testing.T) {
	s := schedule.Schedule{
		{{AgentID: 0, TaskID: 0}},
		{{AgentID: 0, TaskID: 1}},
	}
	assert.Equal(t, 1.5, objective.Evaluate(s, 1))
}

func TestEvaluate_TwoAgentsBalance(t *testing.T) {
	s := schedule.Schedule{
		{{AgentID: 0, TaskID: 0}, {AgentID: 1, TaskID: 0}},
		{{AgentID: 0, TaskID: 1}, {AgentID: 1, TaskID: 1}},
	}
	assert.Equal(t, 1.5, objective.Evaluate(s, 2))
}

func TestEvaluate_EmptyAgentIsInfinity(t *testing.T) {
	s := schedule.Schedule{{{AgentID: 0, TaskID: 0}}}
	assert.True(t, math.IsInf(objective.Evaluate(s, 2), 1))
}
