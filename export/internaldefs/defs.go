package internaldefs

import (
	goPerf "github.com/MrEthical07/goPerf"
)

// LabelRegion is the label/attribute key carrying the region name on every
// exported series.
const LabelRegion = "region"

// FieldDef defines a public type used by goPerf APIs.
//
// FieldDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type FieldDef struct {
	Name    string
	Help    string
	Counter bool
	Value   func(goPerf.RegionStats) float64
}

// FieldDefs is an exported constant or variable used by the instrumentation registry.
var FieldDefs = []FieldDef{
	{Name: "goperf_region_total_ms", Help: "Cumulative finalized time per region in milliseconds.", Counter: true, Value: func(r goPerf.RegionStats) float64 { return r.TotalMs }},
	{Name: "goperf_region_intervals_total", Help: "Finalized intervals per region.", Counter: true, Value: func(r goPerf.RegionStats) float64 { return float64(r.Count) }},
	{Name: "goperf_region_avg_ms", Help: "Mean finalized interval duration per region in milliseconds.", Value: func(r goPerf.RegionStats) float64 { return r.AverageMs }},
	{Name: "goperf_region_min_ms", Help: "Shortest finalized interval per region in milliseconds.", Value: func(r goPerf.RegionStats) float64 { return r.MinMs }},
	{Name: "goperf_region_max_ms", Help: "Longest finalized interval per region in milliseconds.", Value: func(r goPerf.RegionStats) float64 { return r.MaxMs }},
	{Name: "goperf_region_gflops", Help: "Throughput per region in billions of work units per second.", Value: func(r goPerf.RegionStats) float64 { return r.GFlops }},
}
