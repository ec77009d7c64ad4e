package redisink

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	goPerf "github.com/MrEthical07/goPerf"
)

// ErrNilClient is an exported constant or variable used by the instrumentation registry.
var ErrNilClient = errors.New("nil redis client")

const defaultKey = "goperf:reports"

// Sink publishes snapshot report lines to a Redis list so benchmark runs
// across processes or hosts can be collected centrally. Each region becomes
// one list entry of the form "<runID> <statistic line>"; entries from one
// snapshot share the snapshot's run UUID.
//
// Sink implements [goPerf.ReportSink].
type Sink struct {
	client redis.UniversalClient
	key    string
	maxLen int64
}

// Option configures a Sink.
type Option func(*Sink)

// WithKey overrides the Redis list key (default "goperf:reports").
func WithKey(key string) Option {
	return func(s *Sink) {
		if key != "" {
			s.key = key
		}
	}
}

// WithMaxLen caps the list length; older entries are trimmed after each
// snapshot. Zero keeps the list unbounded.
func WithMaxLen(n int64) Option {
	return func(s *Sink) { s.maxLen = n }
}

// New creates a Redis-backed report sink.
func New(client redis.UniversalClient, opts ...Option) (*Sink, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	s := &Sink{client: client, key: defaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Key returns the Redis list key the sink writes to.
func (s *Sink) Key() string {
	if s == nil {
		return ""
	}
	return s.key
}

// Emit pushes one list entry per region in a single pipeline. Empty snapshots
// are skipped. Delivery is best effort: a failed pipeline loses this
// snapshot's lines but never affects measurement.
func (s *Sink) Emit(ctx context.Context, snapshot goPerf.Snapshot) {
	if s == nil || len(snapshot.Regions) == 0 {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pipe := s.client.Pipeline()
	for _, region := range snapshot.Regions {
		pipe.RPush(ctx, s.key, snapshot.RunID+" "+region.Line())
	}
	if s.maxLen > 0 {
		pipe.LTrim(ctx, s.key, -s.maxLen, -1)
	}
	_, _ = pipe.Exec(ctx)
}
