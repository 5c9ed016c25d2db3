package latex

import "github.com/ardnew/texpr/log"

// DefaultMaxDepth is the default limit on expression nesting depth.
const DefaultMaxDepth = 100

// DefaultMaxInput is the default limit on input length in bytes.
const DefaultMaxInput = 64 << 10

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// config holds the configuration options for a parse.
type config struct {
	logger   log.Logger
	maxDepth int
	maxInput int
	partial  bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	return apply(config{
		maxDepth: DefaultMaxDepth,
		maxInput: DefaultMaxInput,
	}, opts...)
}

// WithMaxDepth returns a functional option that sets the maximum expression
// nesting depth. Inputs nested deeper fail with [ErrMaxDepthExceeded].
// A non-positive value disables the limit.
func WithMaxDepth(depth int) Option {
	return func(c config) config {
		c.maxDepth = depth

		return c
	}
}

// WithMaxInput returns a functional option that sets the maximum input
// length in bytes. Longer inputs fail with [ErrInputTooLong].
// A non-positive value disables the limit.
func WithMaxInput(limit int) Option {
	return func(c config) config {
		c.maxInput = limit

		return c
	}
}

// WithPartialInput returns a functional option that allows trailing input
// after a complete expression. By default any unconsumed input fails with
// [ErrTrailingInput].
func WithPartialInput(enable bool) Option {
	return func(c config) config {
		c.partial = enable

		return c
	}
}

// WithLogger returns a functional option that sets the logger used for
// parse tracing.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}
