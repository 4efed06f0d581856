// Package metrics exposes benchmark phase timings as Prometheus collectors.
// The registry is private to a Recorder; results are exported with
// WriteTextfile in the node_exporter textfile collector format.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pqbench"

// Phase names used as the "phase" label value.
const (
	PhaseInsert  = "insert"
	PhaseExtract = "extract"
)

// Recorder collects phase durations and extraction misses per queue
// implementation and operation count.
type Recorder struct {
	registry      *prometheus.Registry
	phaseSeconds  *prometheus.GaugeVec
	missedExtract *prometheus.CounterVec
	runs          *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		phaseSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall clock duration of a benchmark phase.",
		}, []string{"queue", "phase", "operation_count"}),
		missedExtract: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extract_misses_total",
			Help:      "ExtractMax calls that found the queue empty.",
		}, []string{"queue"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed measurement runs.",
		}, []string{"queue"}),
	}

	r.registry.MustRegister(r.phaseSeconds, r.missedExtract, r.runs)
	return r
}

// ObserveRun records the result of one measurement run.
func (r *Recorder) ObserveRun(queue string, count int, insert, extract time.Duration, missed int) {
	c := strconv.Itoa(count)
	r.phaseSeconds.WithLabelValues(queue, PhaseInsert, c).Set(insert.Seconds())
	r.phaseSeconds.WithLabelValues(queue, PhaseExtract, c).Set(extract.Seconds())
	r.missedExtract.WithLabelValues(queue).Add(float64(missed))
	r.runs.WithLabelValues(queue).Inc()
}

// Gatherer returns the Recorder's private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every collected metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Gatherer()); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
