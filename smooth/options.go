package smooth

// Config holds smoothing parameters.
type Config struct {
	// Passes is how many times the full per-axis sweep is applied.
	// Zero is the identity.
	Passes int
	// Periodic lists axes whose boundaries wrap around.
	Periodic []string
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a single non-periodic pass.
func DefaultConfig() Config {
	return Config{Passes: 1}
}

// WithPasses sets how many smoothing passes to apply.
func WithPasses(n int) Option {
	return func(cfg *Config) {
		cfg.Passes = n
	}
}

// WithPeriodic marks the named axes as periodic (wrap-around) boundaries.
func WithPeriodic(dims ...string) Option {
	return func(cfg *Config) {
		cfg.Periodic = append(cfg.Periodic, dims...)
	}
}

func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
