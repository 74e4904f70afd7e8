// Package metrics exposes registry counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/registry"
)

// Namespace prefixes every metric name
const Namespace = "linelog"

// Collector reads a registry's Stats on every scrape.
type Collector struct {
	reg *registry.Registry

	lines        *prometheus.Desc
	rejected     *prometheus.Desc
	unknown      *prometheus.Desc
	destinations *prometheus.Desc
	enabled      *prometheus.Desc
}

// NewCollector creates a collector for reg
func NewCollector(reg *registry.Registry) *Collector {
	const subsystem = "registry"

	return &Collector{
		reg: reg,
		lines: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "lines_total"),
			"Number of lines terminated, by writing level.",
			[]string{"level"}, nil,
		),
		rejected: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, subsystem, "rejected_adds_total"),
			"Number of destinations dropped because the table was full or the sink unusable.",
			nil, nil,
		),
		unknown: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, subsystem, "unknown_destination_total"),
			"Number of configuration calls naming an unregistered sink.",
			nil, nil,
		),
		destinations: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, subsystem, "destinations"),
			"Number of registered destinations.",
			nil, nil,
		),
		enabled: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, subsystem, "enabled_destinations"),
			"Number of registered destinations currently enabled.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.lines
	ch <- c.rejected
	ch <- c.unknown
	ch <- c.destinations
	ch <- c.enabled
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.reg.Stats()
	for l := core.ErrorLevel; l <= core.MaxLevel; l++ {
		ch <- prometheus.MustNewConstMetric(c.lines, prometheus.CounterValue, float64(snap.Lines[l]), l.String())
	}
	ch <- prometheus.MustNewConstMetric(c.lines, prometheus.CounterValue, float64(snap.Lines[core.SilentLevel]), "SILENT")
	ch <- prometheus.MustNewConstMetric(c.lines, prometheus.CounterValue, float64(snap.UnknownLines), core.UnknownLevelName)
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(snap.RejectedAdds))
	ch <- prometheus.MustNewConstMetric(c.unknown, prometheus.CounterValue, float64(snap.UnknownDestination))

	infos := c.reg.Snapshot()
	enabled := 0
	for _, d := range infos {
		if d.Enabled {
			enabled++
		}
	}
	ch <- prometheus.MustNewConstMetric(c.destinations, prometheus.GaugeValue, float64(len(infos)))
	ch <- prometheus.MustNewConstMetric(c.enabled, prometheus.GaugeValue, float64(enabled))
}
