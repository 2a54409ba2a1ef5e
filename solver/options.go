package solver

import "log/slog"

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	logger *slog.Logger
	verify bool
}

func defaultConfig() *config {
	return &config{
		logger: slog.Default(),
		verify: true,
	}
}

// WithLogger sets the logger used for per-edge debug output.
// A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithVerify enables or disables the color check made after every placed
// piece. When enabled (default), the cube's stickers are compared with the
// tracked position and a mismatch panics.
func WithVerify(enabled bool) Option {
	return func(c *config) {
		c.verify = enabled
	}
}
