package profile

// Option applies a configuration option to a Config.
type Option func(Config) Config

// Make builds a Config from the given options applied to the zero value.
func Make(opts ...Option) Config {
	var c Config

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}
