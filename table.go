package rangeintern

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/hupe1980/rangeintern/internal/conv"
)

// Stats is a snapshot of an arena's size and dedup counters.
type Stats struct {
	Entries    int    // distinct contents stored
	Size       int    // arena length in elements (bytes for StrInterner)
	Hits       uint64 // intern calls answered from the table
	Misses     uint64 // intern calls that appended to the arena
	Collisions uint64 // distinct contents sharing a fingerprint (verification only)
}

// table maps fingerprints to spans. It holds the hit / miss / record logic
// shared by every arena flavor and input shape.
type table struct {
	slots  map[uint64]span
	chains map[uint64][]span // spans displaced by collisions, verification only

	verify     bool
	maxOffset  uint64 // 0 means MaxOffset
	hits       uint64
	misses     uint64
	collisions uint64

	logger  *Logger
	metrics MetricsCollector
}

func newTable(o options) table {
	return table{
		slots:   make(map[uint64]span, o.entries),
		verify:  o.verify,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// lookup returns the span stored under fp. Without verification the stored
// span is trusted blindly; with it, matches must confirm the content.
func (t *table) lookup(fp uint64, matches func(span) bool) (span, bool) {
	s, ok := t.slots[fp]
	if !ok {
		return span{}, false
	}
	if !t.verify || matches(s) {
		return s, true
	}
	for _, c := range t.chains[fp] {
		if matches(c) {
			return c, true
		}
	}
	return span{}, false
}

// hit records an intern call answered by lookup.
func (t *table) hit(length int) {
	t.hits++
	t.collector().RecordIntern(true, length)
}

// record stores s under fp after its content has been appended.
func (t *table) record(fp uint64, s span) {
	t.misses++
	t.collector().RecordIntern(false, s.len())

	if t.slots == nil {
		t.slots = make(map[uint64]span)
	}
	existing, taken := t.slots[fp]
	if !taken {
		t.slots[fp] = s
		return
	}

	// Only reachable with verification: lookup vouched that no stored span
	// under fp matches.
	if t.chains == nil {
		t.chains = make(map[uint64][]span)
	}
	t.chains[fp] = append(t.chains[fp], s)
	t.collisions++
	t.collector().RecordCollision()
	t.log().LogCollision(context.Background(), fp, existing.start, existing.end, s.len())
}

// find is lookup plus metrics, for read-only queries.
func (t *table) find(fp uint64, matches func(span) bool) (span, bool) {
	s, ok := t.lookup(fp, matches)
	t.collector().RecordFind(ok)
	return s, ok
}

// reserve validates that length more elements fit behind start and returns
// the resulting span. It panics with an *OffsetOverflowError otherwise.
func (t *table) reserve(start, length int) span {
	lo, hi, err := conv.Span(start, length)
	if err == nil && uint64(hi) > t.limit() {
		err = fmt.Errorf("%w: span [%d, %d) exceeds offset limit %d", conv.ErrOverflow, lo, hi, t.limit())
	}
	if err != nil {
		oerr := &OffsetOverflowError{Start: start, Length: length, cause: err}
		t.log().LogOverflow(context.Background(), start, length, oerr)
		panic(oerr)
	}
	return span{start: lo, end: hi}
}

func (t *table) limit() uint64 {
	if t.maxOffset == 0 {
		return MaxOffset
	}
	return t.maxOffset
}

func (t *table) entries() int {
	n := len(t.slots)
	for _, c := range t.chains {
		n += len(c)
	}
	return n
}

// spans returns every stored span in arena order.
func (t *table) spans() []span {
	out := make([]span, 0, t.entries())
	for _, s := range t.slots {
		out = append(out, s)
	}
	for _, c := range t.chains {
		out = append(out, c...)
	}
	slices.SortFunc(out, compareSpan)
	return out
}

func (t *table) stats(size int) Stats {
	return Stats{
		Entries:    t.entries(),
		Size:       size,
		Hits:       t.hits,
		Misses:     t.misses,
		Collisions: t.collisions,
	}
}

func (t *table) clone() table {
	c := *t
	c.slots = maps.Clone(t.slots)
	if t.chains != nil {
		c.chains = make(map[uint64][]span, len(t.chains))
		for fp, chain := range t.chains {
			c.chains[fp] = slices.Clone(chain)
		}
	}
	return c
}

func (t *table) log() *Logger {
	if t.logger == nil {
		return NoopLogger()
	}
	return t.logger
}

func (t *table) collector() MetricsCollector {
	if t.metrics == nil {
		return NoopMetricsCollector{}
	}
	return t.metrics
}

// checkBounds panics with a *RangeOutOfBoundsError unless s lies within an
// arena of the given size.
func checkBounds(s span, size int) {
	if s.start > s.end || int(s.end) > size {
		panic(&RangeOutOfBoundsError{Start: s.start, End: s.end, Size: size})
	}
}
