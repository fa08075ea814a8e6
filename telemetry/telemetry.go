// Package telemetry provides hierarchical timing collection for parse and
// report operations. Collectors travel through context so instrumentation
// stays out of function signatures and costs nothing when disabled.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.FromContext(ctx).Start("load file")
//	// ... work ...
//	timer.End()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var collectorKey = contextKey{}

// Collector accumulates timing data for a run.
type Collector interface {
	// Start begins timing a named operation. End the returned Timer when
	// the operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w.
	Report(w io.Writer)
}

// Timer tracks one operation. Timers nest via Child.
type Timer interface {
	// End stops the timer and records its duration.
	End()

	// Child creates a nested timer under this one.
	Child(name string) Timer
}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the collector carried by the context, or a no-op
// collector when none is attached.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// noOpCollector discards all telemetry.
type noOpCollector struct{}

func (noOpCollector) Start(string) Timer { return noOpTimer{} }
func (noOpCollector) Report(io.Writer)   {}

type noOpTimer struct{}

func (noOpTimer) End()               {}
func (noOpTimer) Child(string) Timer { return noOpTimer{} }
