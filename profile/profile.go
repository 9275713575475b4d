package profile

// Config functions return all supported pprof configuration parameters.
// The zero configuration is [Zero]; options layer on top of it.
type Config func() (mode, path string, quiet bool)

// Zero is the empty configuration: no mode, no output path, not quiet.
func Zero() (mode, path string, quiet bool) { return "", "", false }

// Start initializes the profiler and returns an interface for stopping it.
//
// Without the pprof build tag, or with no mode selected, Start returns a
// no-op implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	if c == nil {
		c = Zero
	}

	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// with returns a Config whose parameters are c's after applying f.
func (c Config) with(f func(mode, path *string, quiet *bool)) Config {
	if c == nil {
		c = Zero
	}

	mode, path, quiet := c()
	f(&mode, &path, &quiet)

	return func() (string, string, bool) { return mode, path, quiet }
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		return c.with(func(m, _ *string, _ *bool) { *m = mode })
	}
}

// WithPath returns a functional option for setting a profiler's output path.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		return c.with(func(_, p *string, _ *bool) { *p = path })
	}
}

// WithQuiet returns a functional option for setting a profiler's quiet flag.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		return c.with(func(_, _ *string, q *bool) { *q = quiet })
	}
}

type ignore struct{}

func (ignore) Stop() {}
