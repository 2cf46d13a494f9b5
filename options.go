package cwrap

// Option configures line splitting and streaming parse behavior.
type Option func(*config)

type config struct {
	keepCR   bool
	validate bool
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithKeepCR keeps a trailing carriage return on each line. By default a
// "\r\n" line ending is treated like "\n"; with keepCR the '\r' becomes an
// ordinary word character.
func WithKeepCR(enabled bool) Option {
	return func(cfg *config) {
		cfg.keepCR = enabled
	}
}

// WithValidation makes Parse reject invalid UTF-8 and binary-looking input.
// Itemize and SplitLines ignore it.
func WithValidation(enabled bool) Option {
	return func(cfg *config) {
		cfg.validate = enabled
	}
}
