package goPerf

import (
	"github.com/rs/zerolog"
)

// Builder defines a public type used by goPerf APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	logger zerolog.Logger
	hasLog bool
	sink   ReportSink

	built bool
}

// New returns a builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the builder's configuration wholesale.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithEnabled toggles measurement without touching the rest of the config.
func (b *Builder) WithEnabled(enabled bool) *Builder {
	b.config.Enabled = enabled
	return b
}

// WithVerbose toggles debug logging of worker registration and report passes.
func (b *Builder) WithVerbose(verbose bool) *Builder {
	b.config.Verbose = verbose
	return b
}

// WithIdentification toggles platform identification lines in report output.
func (b *Builder) WithIdentification(enabled bool) *Builder {
	b.config.Report.Identification = enabled
	return b
}

// WithLogger sets the logger used for verbose diagnostics. Without it the
// registry logs nowhere.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	b.hasLog = true
	return b
}

// WithReportSink sets the sink the background dispatcher forwards snapshots
// to. It has no effect unless Dispatch.Enabled is set.
func (b *Builder) WithReportSink(sink ReportSink) *Builder {
	b.sink = sink
	return b
}

// Build validates the configuration and constructs the registry, starting the
// background dispatcher when dispatch is enabled. A builder builds exactly
// once; further Build calls return [ErrBuilderReused].
func (b *Builder) Build() (*Registry, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	if err := validateConfig(b.config); err != nil {
		return nil, err
	}

	log := b.logger
	if !b.hasLog {
		log = zerolog.Nop()
	}

	r := &Registry{
		cfg: b.config,
		log: log,
	}
	if b.config.Dispatch.Enabled {
		r.dispatcher = newReportDispatcher(b.config.Dispatch, b.sink, r.Snapshot)
	}

	b.built = true
	return r, nil
}
