// Package metrics instruments the two search drivers with Prometheus
// collectors. Nothing here starts an HTTP listener: the engine only ever
// receives a prometheus.Registerer and registers against it, leaving
// whether (and how) `/metrics` is served entirely to the host.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// RejectReason labels why a candidate move was not adopted as the new
// current/best schedule, for the CandidatesTotal counter's "reason" label.
type RejectReason string

const (
	ReasonInfeasible       RejectReason = "infeasible"
	ReasonNotImproving     RejectReason = "not_improving"
	ReasonMetropolisReject RejectReason = "metropolis_rejected"
)

// Collectors bundles every metric both drivers report against. A Collectors
// value is safe for concurrent use by multiple driver calls, since every
// increment/observe call is routed through prometheus's own thread-safe
// collector implementations.
type Collectors struct {
	IterationsTotal prometheus.Counter
	CandidatesTotal *prometheus.CounterVec
	AcceptedTotal   prometheus.Counter
	FinalCost       prometheus.Histogram
	RunDuration     prometheus.Histogram
}

// Register creates a Collectors and registers every member against reg. A
// nil reg is valid: it yields live collectors that are simply never scraped,
// so callers that don't care about metrics still get a non-nil value back
// and drivers never need a separate nil-check code path.
func Register(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		IterationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dssa",
			Subsystem: "scheduler",
			Name:      "iterations_total",
			Help:      "Total driver iterations executed across all runs.",
		}),
		CandidatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dssa",
			Subsystem: "scheduler",
			Name:      "candidates_total",
			Help:      "Candidate moves generated but not adopted, labeled by reason.",
		}, []string{"reason"}),
		AcceptedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dssa",
			Subsystem: "scheduler",
			Name:      "accepted_total",
			Help:      "Candidate moves adopted as the new current/best schedule.",
		}),
		FinalCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dssa",
			Subsystem: "scheduler",
			Name:      "final_cost",
			Help:      "Objective value of the schedule returned by a driver run.",
			Buckets:   prometheus.DefBuckets,
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dssa",
			Subsystem: "scheduler",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a single driver run.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(c.IterationsTotal, c.CandidatesTotal, c.AcceptedTotal, c.FinalCost, c.RunDuration)
	}
	return c
}

// RejectCandidate records one candidate move that was generated but not
// adopted, labeled by reason.
func (c *Collectors) RejectCandidate(reason RejectReason) {
	if c == nil {
		return
	}
	c.CandidatesTotal.WithLabelValues(string(reason)).Inc()
}
