// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/lingo/core/config"
//
//	type LocalesConfig struct {
//		Dir      string `env:"LINGO_LOCALES_DIR" envDefault:"locales"`
//		BaseLang string `env:"LINGO_BASE_LANG" envDefault:"en"`
//		Strict   bool   `env:"LINGO_STRICT,required"`
//	}
//
//	func main() {
//		var cfg LocalesConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 LocalesConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 LocalesConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type LogConfig struct {
//		Format string `env:"LINGO_LOG_FORMAT" envDefault:"text"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&LocalesConfig{})
//	config.MustLoad(&LogConfig{})
package config
