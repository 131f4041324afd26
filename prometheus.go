package vec

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CollectorConfig is a config of the Prometheus metrics exported for a
// vector. Defaults are filled in by NewCollector and can be adjusted with
// configuration functions.
type CollectorConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Constant labels attached to every metric, e.g. a vector name when
	// one process exposes several collectors.
	ConstLabels prometheus.Labels
}

// Collector exposes a Vector's Metrics snapshot as Prometheus metrics.
//
// Collect reads the vector without synchronization, matching the container's
// single-threaded contract: either scrape from the goroutine that owns the
// vector or scrape while it is quiescent.
type Collector[T any] struct {
	vec *Vector[T]

	length      *prometheus.Desc
	capacity    *prometheus.Desc
	utilization *prometheus.Desc
	grows       *prometheus.Desc
	failedGrows *prometheus.Desc
	moved       *prometheus.Desc
	cloned      *prometheus.Desc
}

// NewCollector returns a prometheus.Collector for v. Many default
// parameters can be configured by passing configuration functions.
func NewCollector[T any](v *Vector[T], configFuncs ...func(c *CollectorConfig)) *Collector[T] {
	c := CollectorConfig{
		Namespace: "vec",
	}
	for _, f := range configFuncs {
		f(&c)
	}

	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(c.Namespace, c.Subsystem, name),
			help, nil, c.ConstLabels,
		)
	}

	return &Collector[T]{
		vec:         v,
		length:      desc("length", "Number of live elements in the vector"),
		capacity:    desc("capacity", "Number of slots in the vector's buffer"),
		utilization: desc("utilization_ratio", "Ratio of live elements to capacity"),
		grows:       desc("reallocations_total", "Number of reallocations performed"),
		failedGrows: desc("reallocation_failures_total", "Number of reallocations abandoned on failure"),
		moved:       desc("elements_moved_total", "Elements bit-moved across reallocations"),
		cloned:      desc("elements_cloned_total", "Elements cloned across reallocations"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector[T]) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.length
	ch <- c.capacity
	ch <- c.utilization
	ch <- c.grows
	ch <- c.failedGrows
	ch <- c.moved
	ch <- c.cloned
}

// Collect implements prometheus.Collector.
func (c *Collector[T]) Collect(ch chan<- prometheus.Metric) {
	m := c.vec.Metrics()
	ch <- prometheus.MustNewConstMetric(c.length, prometheus.GaugeValue, float64(m.Len))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Cap))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization)
	ch <- prometheus.MustNewConstMetric(c.grows, prometheus.CounterValue, float64(m.Grows))
	ch <- prometheus.MustNewConstMetric(c.failedGrows, prometheus.CounterValue, float64(m.FailedGrows))
	ch <- prometheus.MustNewConstMetric(c.moved, prometheus.CounterValue, float64(m.ElementsMoved))
	ch <- prometheus.MustNewConstMetric(c.cloned, prometheus.CounterValue, float64(m.ElementsCloned))
}
