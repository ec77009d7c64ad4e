package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	goPerf "github.com/MrEthical07/goPerf"
	"github.com/MrEthical07/goPerf/export/internaldefs"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil snapshot source")
)

type snapshotSource interface {
	Snapshot() goPerf.Snapshot
}

type observedField struct {
	def        internaldefs.FieldDef
	instrument metric.Float64ObservableGauge
}

type OTelExporter struct {
	source       snapshotSource
	registration metric.Registration
	fields       []observedField
}

// NewOTelExporter registers observable gauges for every goPerf field
// definition on the given meter, observed per region with a region attribute.
func NewOTelExporter(meter metric.Meter, registry *goPerf.Registry) (*OTelExporter, error) {
	if registry == nil {
		return nil, ErrNilSource
	}
	return NewOTelExporterFromSource(meter, registry)
}

// NewOTelExporterFromSource is NewOTelExporter for a custom snapshot source.
func NewOTelExporterFromSource(meter metric.Meter, source snapshotSource) (*OTelExporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	exporter := &OTelExporter{
		source: source,
		fields: make([]observedField, 0, len(internaldefs.FieldDefs)),
	}

	observables := make([]metric.Observable, 0, len(internaldefs.FieldDefs))
	for _, def := range internaldefs.FieldDefs {
		ins, err := meter.Float64ObservableGauge(def.Name, metric.WithDescription(def.Help))
		if err != nil {
			return nil, fmt.Errorf("create observable gauge %s: %w", def.Name, err)
		}
		exporter.fields = append(exporter.fields, observedField{def: def, instrument: ins})
		observables = append(observables, ins)
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		snapshot := exporter.source.Snapshot()
		for _, region := range snapshot.Regions {
			attrs := metric.WithAttributes(attribute.String(internaldefs.LabelRegion, region.Name))
			for _, f := range exporter.fields {
				observer.ObserveFloat64(f.instrument, f.def.Value(region), attrs)
			}
		}
		return nil
	}, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}

	exporter.registration = registration
	return exporter, nil
}

func (e *OTelExporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}
