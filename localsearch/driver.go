// Package localsearch implements a steepest-improvement refiner: starting
// from the greedy seed, it repeatedly perturbs the current best schedule
// with a random move and keeps the perturbation only when it is both
// feasible and strictly better than best.
package localsearch

import (
	"errors"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/Xhst/dssa-multiagent-scheduling/dag"
	"github.com/Xhst/dssa-multiagent-scheduling/feasibility"
	"github.com/Xhst/dssa-multiagent-scheduling/greedy"
	"github.com/Xhst/dssa-multiagent-scheduling/internal/prng"
	"github.com/Xhst/dssa-multiagent-scheduling/metrics"
	"github.com/Xhst/dssa-multiagent-scheduling/move"
	"github.com/Xhst/dssa-multiagent-scheduling/objective"
	"github.com/Xhst/dssa-multiagent-scheduling/schedule"
)

// ErrUnschedulable is returned when the greedy seed could not place every
// task; the driver never runs against a partial schedule.
var ErrUnschedulable = errors.New("localsearch: greedy seed did not cover every task")

// Params bundles the stopping and reproducibility knobs.
type Params struct {
	MaxIter        int
	CandidateMoves int
	Seed           *int64
	Logger         hclog.Logger
	Metrics        *metrics.Collectors
}

// Run builds the greedy seed for resources/graphs and refines it for up to
// MaxIter iterations, stopping early once CandidateMoves feasible candidates
// in a row fail to improve on best (iterations whose move could not be
// applied, or whose candidate was infeasible, do not count toward that
// bound). The returned schedule's cost is never worse than the seed's.
func Run(resources []int, graphs []*dag.Graph, p Params) (schedule.Schedule, error) {
	logger := p.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if p.Metrics == nil {
		p.Metrics = metrics.Register(nil)
	}

	start := time.Now()

	seed, covered := greedy.Seed(resources, graphs)
	if !covered {
		return nil, ErrUnschedulable
	}

	rng := prng.New(p.Seed)
	sizeOf := dag.SizeOf(graphs)
	numAgents := len(graphs)

	best := seed
	bestCost := objective.Evaluate(best, numAgents)
	noImprove := 0

	for iter := 1; iter <= p.MaxIter; iter++ {
		p.Metrics.IterationsTotal.Inc()

		cand := best.Clone()
		if !move.Apply(rng, cand, sizeOf) {
			continue
		}
		if !feasibility.Check(cand, graphs, resources) {
			p.Metrics.RejectCandidate(metrics.ReasonInfeasible)
			continue
		}

		cost := objective.Evaluate(cand, numAgents)
		if cost < bestCost {
			best, bestCost, noImprove = cand, cost, 0
			p.Metrics.AcceptedTotal.Inc()
			if fp, err := schedule.Fingerprint(cand); err == nil {
				logger.Debug("sched: accepted improving move", "iteration", iter, "cost", bestCost, "fingerprint", fp)
			}
		} else {
			noImprove++
			p.Metrics.RejectCandidate(metrics.ReasonNotImproving)
		}

		if noImprove >= p.CandidateMoves {
			logger.Debug("sched: stagnation stop", "iteration", iter, "cost", bestCost)
			break
		}
	}

	p.Metrics.FinalCost.Observe(bestCost)
	p.Metrics.RunDuration.Observe(time.Since(start).Seconds())

	return best, nil
}
