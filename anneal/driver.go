// Package anneal implements a simulated-annealing refiner: a
// Metropolis-criterion random walk over current with geometric cooling,
// tracking the best feasible schedule seen along the way.
package anneal

import (
	"errors"
	"math"
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
var ErrUnschedulable = errors.New("anneal: greedy seed did not cover every task")

// Params bundles the cooling schedule, stopping, and reproducibility knobs.
type Params struct {
	MaxIter        int
	CandidateMoves int
	InitialTemp    float64
	CoolingRate    float64
	Seed           *int64
	Logger         hclog.Logger
	Metrics        *metrics.Collectors
}

// Run builds the greedy seed for resources/graphs and runs simulated
// annealing for up to MaxIter iterations. Cooling (T *= CoolingRate) applies
// only after an iteration's candidate passed the feasibility check — an
// infeasible-and-skipped candidate leaves T untouched.
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

	current := seed
	best := current.Clone()
	currentCost := objective.Evaluate(current, numAgents)
	bestCost := currentCost

	noImprove := 0
	T := p.InitialTemp

	for iter := 1; iter <= p.MaxIter; iter++ {
		p.Metrics.IterationsTotal.Inc()

		cand := current.Clone()
		if !move.Apply(rng, cand, sizeOf) {
			continue
		}
		if !feasibility.Check(cand, graphs, resources) {
			p.Metrics.RejectCandidate(metrics.ReasonInfeasible)
			continue
		}

		cost := objective.Evaluate(cand, numAgents)
		delta := cost - currentCost

		if delta < 0 || rng.Float64() < math.Exp(-delta/T) {
			current, currentCost = cand, cost
			p.Metrics.AcceptedTotal.Inc()
			if cost < bestCost {
				best, bestCost, noImprove = cand, cost, 0
				if fp, err := schedule.Fingerprint(cand); err == nil {
					logger.Debug("sched: accepted improving move", "iteration", iter, "cost", bestCost, "temperature", T, "fingerprint", fp)
				}
			} else {
				noImprove++
			}
		} else {
			noImprove++
			p.Metrics.RejectCandidate(metrics.ReasonMetropolisReject)
		}

		T *= p.CoolingRate

		if noImprove >= p.CandidateMoves {
			logger.Debug("sched: stagnation stop", "iteration", iter, "cost", bestCost, "temperature", T)
			break
		}
	}

	p.Metrics.FinalCost.Observe(bestCost)
	p.Metrics.RunDuration.Observe(time.Since(start).Seconds())

	return best, nil
}
