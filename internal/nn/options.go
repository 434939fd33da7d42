package nn

import "math/rand/v2"

// config collects the settings shared by Layer.Init and Network.Init.
type config struct {
	source        *rand.Rand
	initializer   Initializer
	rate          float32
	maxParameters int
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = newSource(0)
	}
	if cfg.initializer == nil {
		cfg.initializer = Uniform
	}
	return cfg
}

// Option configures Layer.Init and Network.Init.
type Option func(*config)

// WithSeed makes weight initialization reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.source = newSource(seed)
	}
}

// WithSource draws initial weights from rng.
func WithSource(rng *rand.Rand) Option {
	return func(c *config) {
		c.source = rng
	}
}

// WithInitializer replaces the default U(0, 1) weight initializer.
func WithInitializer(init Initializer) Option {
	return func(c *config) {
		c.initializer = init
	}
}

// WithRate sets the rate passed to activation functions during forward
// propagation (the negative slope of LeakyReLU). Defaults to 0.
func WithRate(rate float32) Option {
	return func(c *config) {
		c.rate = rate
	}
}

// WithMaxParameters caps the number of weights and biases a network may
// allocate. Network.Init fails with ErrOutOfMemory beyond the cap. Zero means
// unlimited. Layer.Init ignores it.
func WithMaxParameters(n int) Option {
	return func(c *config) {
		c.maxParameters = n
	}
}
