package chainedtable

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	DefaultCapacity      = 100
	DefaultLoadThreshold = 0.75
)

// LoadCheck selects how the load ratio Len()/Cap() is computed when
// deciding whether to grow.
type LoadCheck int

const (
	// FloatRatio compares the exact ratio against the threshold.
	FloatRatio LoadCheck = iota

	// TruncatedRatio compares the integer quotient Len()/Cap() against the
	// threshold. With a threshold below 1 the table only grows once it
	// holds as many entries as buckets.
	TruncatedRatio
)

func (c LoadCheck) String() string {
	switch c {
	case FloatRatio:
		return "float"
	case TruncatedRatio:
		return "truncated"
	default:
		return fmt.Sprintf("LoadCheck(%d)", int(c))
	}
}

type options struct {
	capacity      int
	loadThreshold float64
	loadCheck     LoadCheck
	logger        *slog.Logger
}

// Option configures Make.
type Option func(*options)

// WithCapacity sets the initial number of buckets. Default DefaultCapacity.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithLoadThreshold sets the load ratio above which the table grows.
// Default DefaultLoadThreshold.
func WithLoadThreshold(loadThreshold float64) Option {
	return func(o *options) {
		o.loadThreshold = loadThreshold
	}
}

// WithLoadCheck selects the ratio semantics. Default FloatRatio.
func WithLoadCheck(c LoadCheck) Option {
	return func(o *options) {
		o.loadCheck = c
	}
}

// WithLogger sets the logger used to report rehashes at debug level.
// If nil is passed, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (o *options) validate() {
	if o.capacity <= 0 {
		panic(fmt.Sprintf("chainedtable: capacity must be positive, got %d", o.capacity))
	}
	if !(o.loadThreshold > 0) || math.IsInf(o.loadThreshold, 1) {
		panic(fmt.Sprintf("chainedtable: load threshold must be positive and finite, got %v", o.loadThreshold))
	}
	if o.loadCheck != FloatRatio && o.loadCheck != TruncatedRatio {
		panic(fmt.Sprintf("chainedtable: unknown load check %v", o.loadCheck))
	}
}

// Make returns an empty table configured by opts. Without options it has
// DefaultCapacity buckets and grows above DefaultLoadThreshold.
// Make panics on a non-positive capacity or threshold.
func Make[K comparable, V any](opts ...Option) *Table[K, V] {
	o := options{
		capacity:      DefaultCapacity,
		loadThreshold: DefaultLoadThreshold,
		loadCheck:     FloatRatio,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.validate()

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Table[K, V]{
		buckets:       make([]bucket[K, V], o.capacity),
		loadThreshold: o.loadThreshold,
		loadCheck:     o.loadCheck,
		hashFunc:      defaultHashFunc[K](),
		logger:        logger,
	}
}
