package utils

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks simulation counters in a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	generations  prometheus.Counter
	undos        prometheus.Counter
	population   prometheus.Gauge
	historyDepth prometheus.Gauge
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		generations: factory.NewCounter(prometheus.CounterOpts{
			Name: "life_generations_total",
			Help: "Total number of generations computed",
		}),
		undos: factory.NewCounter(prometheus.CounterOpts{
			Name: "life_undos_total",
			Help: "Total number of successful undo operations",
		}),
		population: factory.NewGauge(prometheus.GaugeOpts{
			Name: "life_population",
			Help: "Current number of live cells",
		}),
		historyDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "life_history_depth",
			Help: "Number of generations that can currently be undone",
		}),
	}
}

// ObserveTick records one computed generation
func (m *Metrics) ObserveTick(population, historyDepth int) {
	m.generations.Inc()
	m.population.Set(float64(population))
	m.historyDepth.Set(float64(historyDepth))
}

// ObserveUndo records one successful undo
func (m *Metrics) ObserveUndo(population, historyDepth int) {
	m.undos.Inc()
	m.population.Set(float64(population))
	m.historyDepth.Set(float64(historyDepth))
}

// ObservePopulation records a population change made outside of tick or undo
func (m *Metrics) ObservePopulation(population int) {
	m.population.Set(float64(population))
}

// Summary gathers the current value of every metric keyed by name.
func (m *Metrics) Summary() (map[string]float64, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "[Metrics.Summary] failed to gather metrics")
	}

	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				out[mf.GetName()] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[mf.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}
