package layout

import "log/slog"

// defaultPAXBlockBits is 4096 bytes, the standard PAX block size.
const defaultPAXBlockBits = 4096 * 8

// Options configures the layout factories via the functional-options
// pattern: each Option mutates a default Options value.
type Options struct {
	// PAXBlockBits overrides the PAX block size (bits). Zero means
	// defaultPAXBlockBits (4096 bytes).
	PAXBlockBits uint64
	logger       *slog.Logger
}

// Option mutates an Options value.
type Option func(*Options)

// WithPAXBlockBits sets a non-default PAX block size, in bits.
func WithPAXBlockBits(bits uint64) Option {
	return func(o *Options) { o.PAXBlockBits = bits }
}

// WithLogger attaches a structured logger; factories log at Debug level
// only and never let logging affect control flow.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func newOptions(opts []Option) Options {
	o := Options{PAXBlockBits: defaultPAXBlockBits, logger: slog.Default()}
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
