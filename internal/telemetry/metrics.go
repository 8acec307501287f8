package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
)

// Metrics keeps run counters in a private registry. They are exported as a
// node-exporter textfile once a run finishes.
type Metrics struct {
	reg *prometheus.Registry

	steps     *prometheus.CounterVec
	changed   *prometheus.CounterVec
	nucleated *prometheus.CounterVec
	grains    *prometheus.GaugeVec
	boundary  *prometheus.GaugeVec
	energy    *prometheus.GaugeVec
}

// NewMetrics registers the grain collectors.
func NewMetrics() *Metrics {
	labels := []string{"engine"}
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grain_steps_total",
			Help: "Completed engine steps.",
		}, labels),
		changed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grain_cells_changed_total",
			Help: "Cells whose state changed during a step.",
		}, labels),
		nucleated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grain_nuclei_total",
			Help: "Recrystallized nuclei added by the nucleation schedule.",
		}, labels),
		grains: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "grain_count",
			Help: "Connected grains after the latest step.",
		}, labels),
		boundary: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "grain_boundary_percent",
			Help: "Share of cells on a grain boundary.",
		}, labels),
		energy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "grain_mean_stored_energy",
			Help: "Mean stored energy per cell.",
		}, labels),
	}
	m.reg.MustRegister(m.steps, m.changed, m.nucleated, m.grains, m.boundary, m.energy)
	return m
}

// Observe accounts one step. Nil metrics ignore the call.
func (m *Metrics) Observe(engine string, st core.StepStats, s grain.Stats) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(engine).Inc()
	m.changed.WithLabelValues(engine).Add(float64(st.Changed))
	m.nucleated.WithLabelValues(engine).Add(float64(st.Nucleated))
	m.grains.WithLabelValues(engine).Set(float64(s.Grains))
	m.boundary.WithLabelValues(engine).Set(s.BoundaryPercentage)
	m.energy.WithLabelValues(engine).Set(s.MeanEnergy)
}

// WriteTextfile writes every collected metric to path in the text
// exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
