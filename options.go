package rangeintern

type options struct {
	capacity         int
	entries          int
	logger           *Logger
	metricsCollector MetricsCollector
	verify           bool
	elemEqual        any
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures an arena at construction time.
type Option func(*options)

// WithCapacity preallocates room for size arena elements (bytes for a
// StrInterner) and entries distinct contents. Non-positive values are ignored.
func WithCapacity(size, entries int) Option {
	return func(o *options) {
		if size > 0 {
			o.capacity = size
		}
		if entries > 0 {
			o.entries = entries
		}
	}
}

// WithLogger sets the logger used for collision and overflow events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified on every intern and find.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metricsCollector = c
	}
}

// WithContentVerification makes the arena compare stored content on every
// fingerprint hit.
//
// By default two distinct contents with the same fingerprint alias: the second
// intern call returns the first content's range. With verification enabled the
// second content is stored separately, Find keeps telling them apart and the
// event is counted in Stats.Collisions. The price is one content comparison per
// hit.
func WithContentVerification() Option {
	return func(o *options) {
		o.verify = true
	}
}

// WithElementEqual sets the element comparison an Interner[T] uses under
// WithContentVerification. It is required for element types that do not
// support ==, such as []byte:
//
//	in := NewInternerFunc(hashBytes, WithContentVerification(), WithElementEqual(bytes.Equal))
//
// The function type must match the Interner's element type exactly; the
// constructor panics otherwise. StrInterner ignores this option.
func WithElementEqual[T any](equal func(a, b T) bool) Option {
	return func(o *options) {
		o.elemEqual = equal
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
