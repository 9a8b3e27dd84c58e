package engine

import "errors"

var (
	// ErrNoCapacitySlots is returned when Request.Resources is empty while
	// at least one agent has tasks to place.
	ErrNoCapacitySlots = errors.New("engine: resources must have at least one slot")

	// ErrEmptyAgent is returned when an AgentSpec has zero tasks: the
	// objective evaluator would otherwise divide by zero.
	ErrEmptyAgent = errors.New("engine: agent has zero tasks")

	// ErrBadParameter is returned when a heuristic parameter is outside its
	// documented range, or Method names an unknown method.
	ErrBadParameter = errors.New("engine: invalid parameter")

	// ErrUnschedulable is returned when the greedy seed could not place
	// every task for the requested resources and agents; the caller never
	// receives a silently partial schedule.
	ErrUnschedulable = errors.New("engine: no feasible complete schedule exists")

	// ErrOracleFailed is returned when the ILP reference oracle reports a
	// non-optimal status.
	ErrOracleFailed = errors.New("engine: oracle did not reach an optimal solution")
)
