package rangeintern

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    hits   prometheus.Counter
//	    misses prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordIntern(hit bool, length int) {
//	    if hit {
//	        p.hits.Inc()
//	        return
//	    }
//	    p.misses.Inc()
//	}
type MetricsCollector interface {
	// RecordIntern is called after each intern call.
	// hit reports whether an existing range was returned, length is the
	// number of elements of the interned content.
	RecordIntern(hit bool, length int)

	// RecordFind is called after each find call.
	RecordFind(found bool)

	// RecordCollision is called when content verification detects two
	// distinct contents with the same fingerprint.
	RecordCollision()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIntern(bool, int) {}
func (NoopMetricsCollector) RecordFind(bool)        {}
func (NoopMetricsCollector) RecordCollision()       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
//
// Counters are atomic, so one collector may be shared by several arenas that
// live on different goroutines.
type BasicMetricsCollector struct {
	InternCount   atomic.Int64
	InternHits    atomic.Int64
	InternedItems atomic.Int64
	AppendedItems atomic.Int64
	FindCount     atomic.Int64
	FindHits      atomic.Int64
	Collisions    atomic.Int64
}

// RecordIntern implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIntern(hit bool, length int) {
	b.InternCount.Add(1)
	b.InternedItems.Add(int64(length))
	if hit {
		b.InternHits.Add(1)
		return
	}
	b.AppendedItems.Add(int64(length))
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(found bool) {
	b.FindCount.Add(1)
	if found {
		b.FindHits.Add(1)
	}
}

// RecordCollision implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCollision() {
	b.Collisions.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InternCount:   b.InternCount.Load(),
		InternHits:    b.InternHits.Load(),
		InternedItems: b.InternedItems.Load(),
		AppendedItems: b.AppendedItems.Load(),
		FindCount:     b.FindCount.Load(),
		FindHits:      b.FindHits.Load(),
		Collisions:    b.Collisions.Load(),
		HitRatio:      b.hitRatio(),
	}
}

func (b *BasicMetricsCollector) hitRatio() float64 {
	count := b.InternCount.Load()
	if count == 0 {
		return 0
	}
	return float64(b.InternHits.Load()) / float64(count)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InternCount   int64
	InternHits    int64
	InternedItems int64
	AppendedItems int64
	FindCount     int64
	FindHits      int64
	Collisions    int64
	HitRatio      float64
}
