package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// validate checks the structural and parameter preconditions a Request
// must satisfy, aggregating every violation with go-multierror rather
// than stopping at the first, matching dag.Build's own aggregation style.
func (r Request) validate() error {
	var errs *multierror.Error

	totalTasks := 0
	for _, agent := range r.Agents {
		totalTasks += len(agent.TaskSizes)
	}

	// Zero agents or zero slots with no pending tasks is an empty problem,
	// not a malformed one: it resolves to an empty schedule rather than an
	// error. Only reject an empty resource profile when there is actually
	// something to place.
	if len(r.Resources) == 0 && totalTasks > 0 {
		errs = multierror.Append(errs, ErrNoCapacitySlots)
	}
	for t, capacity := range r.Resources {
		if capacity < 0 {
			errs = multierror.Append(errs, fmt.Errorf("slot %d: %w (negative capacity)", t, ErrBadParameter))
		}
	}

	for k, agent := range r.Agents {
		if len(agent.TaskSizes) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("agent %d: %w", k, ErrEmptyAgent))
		}
	}

	switch r.Method {
	case MethodGreedy, MethodILP:
		// no heuristic parameters to validate
	case MethodLocalSearch, MethodAnneal:
		if err := r.Heuristic.Validate(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: %v", ErrBadParameter, err))
		}
	default:
		errs = multierror.Append(errs, fmt.Errorf("%w: unknown method %q", ErrBadParameter, r.Method))
	}

	return errs.ErrorOrNil()
}
