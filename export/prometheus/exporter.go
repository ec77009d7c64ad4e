package prometheus

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	goPerf "github.com/MrEthical07/goPerf"
	"github.com/MrEthical07/goPerf/export/internaldefs"
)

// ErrNilSource is an exported constant or variable used by the instrumentation registry.
var ErrNilSource = errors.New("nil snapshot source")

type snapshotSource interface {
	Snapshot() goPerf.Snapshot
}

// Collector exposes goPerf region statistics as Prometheus series, one series
// per field definition with the region name as a label. It implements
// [prometheus.Collector] over a fresh snapshot per scrape.
//
//	Docs: docs/exporters.md
type Collector struct {
	source snapshotSource
	descs  []*prometheus.Desc
}

// NewCollector creates a collector that reads from the given [goPerf.Registry].
//
//	Docs: docs/exporters.md
func NewCollector(registry *goPerf.Registry) (*Collector, error) {
	if registry == nil {
		return nil, ErrNilSource
	}
	return NewCollectorFromSource(registry)
}

// NewCollectorFromSource creates a collector from a custom snapshot source.
//
//	Docs: docs/exporters.md
func NewCollectorFromSource(source snapshotSource) (*Collector, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	c := &Collector{
		source: source,
		descs:  make([]*prometheus.Desc, 0, len(internaldefs.FieldDefs)),
	}
	for _, def := range internaldefs.FieldDefs {
		c.descs = append(c.descs, prometheus.NewDesc(def.Name, def.Help, []string{internaldefs.LabelRegion}, nil))
	}
	return c, nil
}

// Describe implements [prometheus.Collector].
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs {
		ch <- d
	}
}

// Collect implements [prometheus.Collector]. Each scrape takes one merged
// snapshot under the registry lock and renders every region against every
// field definition.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snapshot := c.source.Snapshot()
	for _, region := range snapshot.Regions {
		for i, def := range internaldefs.FieldDefs {
			valueType := prometheus.GaugeValue
			if def.Counter {
				valueType = prometheus.CounterValue
			}
			ch <- prometheus.MustNewConstMetric(c.descs[i], valueType, def.Value(region), region.Name)
		}
	}
}

// Handler returns an http.Handler serving the collector's series from a
// private Prometheus registry, so callers never touch the global one.
func Handler(registry *goPerf.Registry) (http.Handler, error) {
	collector, err := NewCollector(registry)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collector)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}
