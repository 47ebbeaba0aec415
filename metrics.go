package palettize

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after mapper construction.
	// paletteSize is the number of palette entries, duration is the time
	// spent building the vector cache, err is nil if successful.
	RecordBuild(paletteSize int, duration time.Duration, err error)

	// RecordResolve is called after each resolve operation.
	// hit reports whether the memo answered the query without a scan.
	// Resolve is the per-pixel hot path, so no duration is recorded here.
	RecordResolve(hit bool)

	// RecordSnapshotSave is called after each snapshot save.
	RecordSnapshotSave(duration time.Duration, err error)

	// RecordSnapshotLoad is called after each snapshot load.
	RecordSnapshotLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordResolve(bool)                      {}
func (NoopMetricsCollector) RecordSnapshotSave(time.Duration, error) {}
func (NoopMetricsCollector) RecordSnapshotLoad(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount         atomic.Int64
	BuildErrors        atomic.Int64
	BuildTotalNanos    atomic.Int64
	ResolveCount       atomic.Int64
	ResolveMemoHits    atomic.Int64
	SnapshotSaveCount  atomic.Int64
	SnapshotSaveErrors atomic.Int64
	SnapshotLoadCount  atomic.Int64
	SnapshotLoadErrors atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(paletteSize int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(hit bool) {
	b.ResolveCount.Add(1)
	if hit {
		b.ResolveMemoHits.Add(1)
	}
}

// RecordSnapshotSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotSave(duration time.Duration, err error) {
	b.SnapshotSaveCount.Add(1)
	if err != nil {
		b.SnapshotSaveErrors.Add(1)
	}
}

// RecordSnapshotLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotLoad(duration time.Duration, err error) {
	b.SnapshotLoadCount.Add(1)
	if err != nil {
		b.SnapshotLoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:         b.BuildCount.Load(),
		BuildErrors:        b.BuildErrors.Load(),
		BuildAvgNanos:      b.getAvgBuildNanos(),
		ResolveCount:       b.ResolveCount.Load(),
		ResolveMemoHits:    b.ResolveMemoHits.Load(),
		SnapshotSaveCount:  b.SnapshotSaveCount.Load(),
		SnapshotSaveErrors: b.SnapshotSaveErrors.Load(),
		SnapshotLoadCount:  b.SnapshotLoadCount.Load(),
		SnapshotLoadErrors: b.SnapshotLoadErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount         int64
	BuildErrors        int64
	BuildAvgNanos      int64
	ResolveCount       int64
	ResolveMemoHits    int64
	SnapshotSaveCount  int64
	SnapshotSaveErrors int64
	SnapshotLoadCount  int64
	SnapshotLoadErrors int64
}
