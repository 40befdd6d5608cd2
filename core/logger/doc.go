// Package logger provides structured logging utilities built on Go's standard
// slog package, with typed attribute helpers for translation workflows.
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/dmitrymomot/lingo/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level (the default)
//	log := logger.New(
//		logger.WithAttrs(slog.String("service", "api")),
//	)
//
//	log.Info("dictionaries loaded",
//		logger.Component("loader"),
//		logger.Count("languages", 4),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty Attr for zero values, so they can be passed
// unconditionally:
//
//	log.Debug("missing translation",
//		logger.Language("de"),
//		logger.Namespace("checkout"),
//		logger.TranslationKey("cart.total"),
//	)
//
//	log.Error("dictionary parse failed",
//		logger.Error(err),
//		logger.File("locales/de/checkout.yaml"),
//	)
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSON(), logger.WithOutput(&buf))
//
//	log.Info("test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
