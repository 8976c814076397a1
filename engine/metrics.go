// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result and outcome label values.
const (
	resultValid       = "valid"
	resultInvalid     = "invalid"
	resultFailed      = "failed"
	resultSucceeded   = "succeeded"
	outcomeStructure  = "structure"
	outcomeSeparators = "separators"
	outcomeAuxiliary  = "auxiliary"
	outcomeArc        = "arc"
	outcomeConsistent = "inconsistent"
	outcomeRewrite    = "rewrite"
)

// Metrics are the engine's Prometheus collectors.
type Metrics struct {
	// Validations counts trace passes by result (valid, invalid).
	Validations *prometheus.CounterVec
	// Resolutions counts ResolveAndCommit calls by outcome: the winning
	// handedness, or the stage that failed.
	Resolutions *prometheus.CounterVec
	// Attempts counts handedness evaluations by handedness and result.
	Attempts *prometheus.CounterVec
	// LoopNodes observes the node count of every traced loop.
	LoopNodes prometheus.Histogram
}

// NewMetrics builds the collectors and registers them on reg when it is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Validations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knot",
			Name:      "validations_total",
			Help:      "Diagram validation passes by result",
		}, []string{"result"}),
		Resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knot",
			Name:      "resolutions_total",
			Help:      "Arc resolution passes by outcome",
		}, []string{"outcome"}),
		Attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knot",
			Name:      "consistency_attempts_total",
			Help:      "Crossing consistency evaluations by handedness and result",
		}, []string{"handedness", "result"}),
		LoopNodes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "knot",
			Name:      "loop_nodes",
			Help:      "Node visits of traced loops",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}),
	}
}
