package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/go-contactlink/foundation/contactutil"
)

// Collector counts generated contact links and rejected phone numbers.
// It implements contactutil.Observer and prometheus.Collector.
type Collector struct {
	links   *prometheus.CounterVec
	invalid *prometheus.CounterVec
}

// NewCollector builds counters under namespace (e.g. "contactlink").
func NewCollector(namespace string) *Collector {
	return &Collector{
		links: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_built_total",
			Help:      "Deep links generated, by page placement.",
		}, []string{"placement"}),
		invalid: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_numbers_total",
			Help:      "Phone numbers that failed plan validation, by reason.",
		}, []string{"reason"}),
	}
}

func (c *Collector) ObserveInvalid(d contactutil.Diagnostic) {
	c.invalid.WithLabelValues(d.Reason).Inc()
}

// ObserveLink records one generated link for placement.
func (c *Collector) ObserveLink(placement string) {
	c.links.WithLabelValues(placement).Inc()
}

// LinkCounter exposes the counter behind ObserveLink for placement.
func (c *Collector) LinkCounter(placement string) prometheus.Counter {
	return c.links.WithLabelValues(placement)
}

// InvalidCounter exposes the counter behind ObserveInvalid for reason.
func (c *Collector) InvalidCounter(reason string) prometheus.Counter {
	return c.invalid.WithLabelValues(reason)
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.links.Describe(ch)
	c.invalid.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.links.Collect(ch)
	c.invalid.Collect(ch)
}

var (
	_ contactutil.Observer = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)
