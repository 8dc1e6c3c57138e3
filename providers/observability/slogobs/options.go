package slogobs

import (
	"io"
	"log/slog"
	"os"
)

// Option configures an Observer created with [New].
type Option func(*config)

type config struct {
	logger *slog.Logger
	level  slog.Leveler
	output io.Writer
}

func applyOptions(opts ...Option) *config {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger uses an existing slog.Logger instead of constructing one.
// When set, WithLevel and WithOutput are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithLevel sets the minimum log level for the constructed logger.
func WithLevel(level slog.Leveler) Option {
	return func(cfg *config) {
		cfg.level = level
	}
}

// WithOutput sets the destination for the constructed logger.
func WithOutput(w io.Writer) Option {
	return func(cfg *config) {
		cfg.output = w
	}
}
