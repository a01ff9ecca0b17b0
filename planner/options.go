package planner

import "log/slog"

// Options configures Enumerate via the functional-options pattern used
// throughout this repository.
type Options struct {
	logger *slog.Logger
}

// Option mutates an Options value.
type Option func(*Options)

// WithLogger attaches a structured logger; Enumerate logs progress at
// Debug level only and never lets logging affect control flow.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func newOptions(opts []Option) Options {
	o := Options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}
