package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/lingo/core/i18n"
)

// i18nTranslatorContextKey is used as a key for storing the i18n translator
// in the request context.
type i18nTranslatorContextKey struct{}

// I18nConfig configures the i18n middleware.
type I18nConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Bundle is the translation bundle to bind translators to (required)
	Bundle *i18n.Bundle
	// LanguageExtractor defines how to extract the language from the request.
	// Default: query parameter, then cookie, then Accept-Language header.
	LanguageExtractor func(r *http.Request) string
	// Namespace is bound to the stored translator so its lookups resolve
	// there by default. Empty leaves namespace selection to each lookup.
	Namespace string
	// QueryParam is the query parameter checked for a language override.
	// Default: "lang".
	QueryParam string
	// CookieName is the cookie checked for a persisted language choice.
	// Default: "lang".
	CookieName string
	// FallbackLanguage is used when no supported language can be extracted.
	// Default: the bundle's default language.
	FallbackLanguage string
}

// I18n creates an i18n middleware with default configuration.
// It detects the request language and stores a translator in the request
// context for handlers to retrieve with GetTranslator.
func I18n(bundle *i18n.Bundle, namespace string) func(http.Handler) http.Handler {
	return I18nWithConfig(I18nConfig{
		Bundle:    bundle,
		Namespace: namespace,
	})
}

// I18nWithConfig creates an i18n middleware with custom configuration.
// It creates a translator bound to the extracted language and configured
// namespace, storing it in the request context along with the language code
// itself, so both GetTranslator and i18n.Locale work downstream.
func I18nWithConfig(cfg I18nConfig) func(http.Handler) http.Handler {
	if cfg.Bundle == nil {
		panic("i18n middleware: bundle is required")
	}

	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "lang"
	}
	if cfg.FallbackLanguage == "" {
		cfg.FallbackLanguage = cfg.Bundle.DefaultLanguage()
	}
	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = defaultLanguageExtractor(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			language := cfg.LanguageExtractor(r)
			if language == "" {
				language = cfg.FallbackLanguage
			}

			translator := i18n.NewTranslator(cfg.Bundle, language, cfg.Namespace)
			ctx := i18n.SetLocale(r.Context(), language)
			ctx = SetTranslator(ctx, translator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// defaultLanguageExtractor checks the query parameter, then the cookie, then
// the Accept-Language header, accepting only languages the bundle knows.
// An explicit but unsupported choice falls through to the next source.
func defaultLanguageExtractor(cfg I18nConfig) func(r *http.Request) string {
	available := cfg.Bundle.Languages()

	return func(r *http.Request) string {
		if requested := r.URL.Query().Get(cfg.QueryParam); requested != "" {
			if matched, ok := i18n.MatchLanguage(requested, available); ok {
				return matched
			}
		}

		if cookie, err := r.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
			if matched, ok := i18n.MatchLanguage(cookie.Value, available); ok {
				return matched
			}
		}

		if header := r.Header.Get("Accept-Language"); header != "" {
			if matched := i18n.ParseAcceptLanguage(header, available); matched != "" {
				return matched
			}
		}

		return ""
	}
}

// SetTranslator returns a context carrying the translator. Useful in tests
// and in handlers constructed outside the middleware chain.
func SetTranslator(ctx context.Context, translator *i18n.Translator) context.Context {
	return context.WithValue(ctx, i18nTranslatorContextKey{}, translator)
}

// GetTranslator retrieves the i18n translator from the context.
// Returns the translator and a boolean indicating whether it was found.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	translator, ok := ctx.Value(i18nTranslatorContextKey{}).(*i18n.Translator)
	return translator, ok
}
