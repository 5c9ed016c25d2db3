package profile

// Config holds the profiling parameters given on the texpr command line.
//
// Mode selects the profile to record (see [Modes]), Dir is the directory
// where the profile file is written, and Quiet suppresses the profiler's
// own log output so it does not interleave with formula output.
type Config struct {
	Mode  string
	Dir   string
	Quiet bool
}

// Start initializes the profiler and returns an interface for stopping it.
//
// If build tag pprof or Mode are unset, then Start returns a no-op
// implementation.
// Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	if c.Mode == "" {
		return ignore{}
	}

	return start(c)
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) Option {
	return func(c Config) Config {
		c.Mode = mode

		return c
	}
}

// WithDir returns a functional option for setting a profiler's output
// directory.
func WithDir(dir string) Option {
	return func(c Config) Config {
		c.Dir = dir

		return c
	}
}

// WithQuiet returns a functional option for setting a profiler's quiet flag.
func WithQuiet(quiet bool) Option {
	return func(c Config) Config {
		c.Quiet = quiet

		return c
	}
}

type ignore struct{}

func (ignore) Stop() {}
