package logger

import (
	"io"
	"log/slog"
	"os"
)

// options holds logger configuration applied during construction.
type options struct {
	level  slog.Leveler
	json   bool
	output io.Writer
	source bool
	attrs  []slog.Attr
}

// Option configures the logger during construction.
type Option func(*options)

// New creates a slog.Logger with the given options.
// Defaults to JSON output at Info level on stdout, suitable for production.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		json:   true,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     o.level,
		AddSource: o.source,
	}

	var handler slog.Handler
	if o.json {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(handler)
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSON enables JSON output.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithText enables human-readable text output.
func WithText() Option {
	return func(o *options) {
		o.json = false
	}
}

// WithOutput sets the output destination.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithSource adds source file and line information to log records.
func WithSource() Option {
	return func(o *options) {
		o.source = true
	}
}

// WithAttrs adds attributes to every record produced by the logger.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithDevelopment configures text output at Debug level with an app name
// attribute. Intended for local development.
func WithDevelopment(app string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.json = false
		if app != "" {
			o.attrs = append(o.attrs, slog.String("app", app))
		}
	}
}
