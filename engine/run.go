package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/Xhst/dssa-multiagent-scheduling/anneal"
	"github.com/Xhst/dssa-multiagent-scheduling/dag"
	"github.com/Xhst/dssa-multiagent-scheduling/greedy"
	"github.com/Xhst/dssa-multiagent-scheduling/localsearch"
	"github.com/Xhst/dssa-multiagent-scheduling/objective"
	"github.com/Xhst/dssa-multiagent-scheduling/oracle"
	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// Run validates req, builds the per-agent DAGs, dispatches to the method
// req.Method names, and returns the host-agnostic response envelope.
func Run(req Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	if req.RunID == "" {
		req.RunID = uuid.NewString()
	}
	logger := req.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.With("run_id", req.RunID, "method", string(req.Method))

	agentTasks := make([][]int, len(req.Agents))
	dependencies := make([][][]int, len(req.Agents))
	colors := make([]string, len(req.Agents))
	for k, agent := range req.Agents {
		agentTasks[k] = agent.TaskSizes
		dependencies[k] = agent.Dependencies
		colors[k] = agent.Color
	}

	graphs, err := dag.Build(agentTasks, dependencies)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	start := time.Now()
	var sched schedule.Schedule

	switch req.Method {
	case MethodGreedy:
		var covered bool
		sched, covered = greedy.Seed(req.Resources, graphs)
		if !covered {
			return nil, ErrUnschedulable
		}
		logger.Debug("sched: greedy seed built", "cost", objective.Evaluate(sched, len(graphs)))

	case MethodLocalSearch:
		sched, err = localsearch.Run(req.Resources, graphs, localsearch.Params{
			MaxIter:        req.Heuristic.MaxIterations,
			CandidateMoves: req.Heuristic.MaxMoves,
			Seed:           req.Heuristic.Seed,
			Logger:         logger,
			Metrics:        req.Metrics,
		})
		if err != nil {
			return nil, translateDriverErr(err)
		}

	case MethodAnneal:
		sched, err = anneal.Run(req.Resources, graphs, anneal.Params{
			MaxIter:        req.Heuristic.MaxIterations,
			CandidateMoves: req.Heuristic.MaxMoves,
			InitialTemp:    req.Heuristic.Temperature,
			CoolingRate:    req.Heuristic.CoolingRate,
			Seed:           req.Heuristic.Seed,
			Logger:         logger,
			Metrics:        req.Metrics,
		})
		if err != nil {
			return nil, translateDriverErr(err)
		}

	case MethodILP:
		result := oracle.Solve(req.Resources, graphs, req.NodeLimit)
		if result.Status != oracle.StatusOptimal {
			logger.Debug("sched: oracle did not reach optimal", "status", result.Status.String())
			return nil, ErrOracleFailed
		}
		sched = result.Schedule
	}

	// The response z is always the evaluator's own computation, never a
	// driver's or the oracle's internally tracked value.
	z := objective.Evaluate(sched, len(graphs))
	elapsed := time.Since(start)

	logger.Debug("sched: run complete", "cost", z, "elapsed", elapsed.String())

	return &Result{
		RunID:          req.RunID,
		Method:         req.Method,
		Schedule:       sched,
		Z:              z,
		Colors:         colors,
		Resources:      req.Resources,
		ElapsedSeconds: elapsed.Seconds(),
	}, nil
}

// translateDriverErr maps a driver's own unschedulable sentinel onto the
// engine's, so callers only ever branch on errors.Is(err, engine.Err*).
func translateDriverErr(err error) error {
	if errors.Is(err, localsearch.ErrUnschedulable) || errors.Is(err, anneal.ErrUnschedulable) {
		return ErrUnschedulable
	}
	return fmt.Errorf("engine: %w", err)
}
