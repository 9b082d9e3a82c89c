// Package metrics provides Prometheus instrumentation for sorted containers.
// A Collector implements the container's Observer interface; wire it in with
// the WithObserver option at construction.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/amp-labs/sortedseq/sorted"
)

// Collector counts container activity with Prometheus counters. All metrics
// carry a "container" label so several instrumented containers can share one
// registry. Multiple containers may also share a single Collector, in which
// case their counts are merged.
type Collector struct {
	pushed   prometheus.Counter
	replaced prometheus.Counter
	rejected prometheus.Counter
	compared prometheus.Counter
}

var _ sorted.Observer = (*Collector)(nil)

// NewCollector creates a Collector registered with reg. The container label
// value distinguishes this container's series from others in the same
// registry; registering the same label value twice on one registry panics,
// as is usual for Prometheus collectors.
func NewCollector(reg prometheus.Registerer, container string) *Collector {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"container": container}

	return &Collector{
		pushed: factory.NewCounter(prometheus.CounterOpts{
			Name:        "sorted_container_pushed_total",
			Help:        "The total number of elements inserted incrementally",
			ConstLabels: labels,
		}),
		replaced: factory.NewCounter(prometheus.CounterOpts{
			Name:        "sorted_container_replaced_total",
			Help:        "The total number of elements installed by bulk replacement",
			ConstLabels: labels,
		}),
		rejected: factory.NewCounter(prometheus.CounterOpts{
			Name:        "sorted_container_rejected_nils_total",
			Help:        "The total number of nil values that caused a batch rejection",
			ConstLabels: labels,
		}),
		compared: factory.NewCounter(prometheus.CounterOpts{
			Name:        "sorted_container_comparisons_total",
			Help:        "The total number of comparator invocations",
			ConstLabels: labels,
		}),
	}
}

// Pushed records count incremental insertions.
func (c *Collector) Pushed(count int) {
	c.pushed.Add(float64(count))
}

// Replaced records a bulk replacement that installed count elements.
func (c *Collector) Replaced(count int) {
	c.replaced.Add(float64(count))
}

// Rejected records a batch refused for containing count nil values.
func (c *Collector) Rejected(count int) {
	c.rejected.Add(float64(count))
}

// Compared records count comparator invocations.
func (c *Collector) Compared(count int) {
	c.compared.Add(float64(count))
}
