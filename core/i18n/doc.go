// Package i18n provides internationalization with immutable, thread-safe
// bundles, count-aware key resolution and template interpolation backed by
// the messageformat engine.
//
// A Bundle holds per-language, per-namespace dictionaries and resolves keys
// through a fixed candidate chain: context and count qualified variants
// first, then the bare key, in the requested language, its base language
// and finally the default language. Resolved templates are interpolated
// with CLDR plural rules and locale-aware number and date formatting. All
// configuration is done at construction time, making instances immutable
// and safe for concurrent use.
//
// # Basic Usage
//
// Create a Bundle with translations and retrieve localized text:
//
//	bundle, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", "app", map[string]any{
//			"welcome": "Welcome to our application",
//			"goodbye": "Goodbye, {{name}}!",
//		}),
//		i18n.WithTranslations("es", "app", map[string]any{
//			"welcome": "Bienvenido a nuestra aplicación",
//			"goodbye": "¡Adiós, {{name}}!",
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	msg := bundle.T("es", "app:welcome")
//	// Output: "Bienvenido a nuestra aplicación"
//
//	farewell := bundle.T("es", "app:goodbye", i18n.M{"name": "Juan"})
//	// Output: "¡Adiós, Juan!"
//
// Keys embed their namespace before the ":" separator; keys without one use
// the default namespace. Nested dictionary entries are addressed with "."
// ("errors.http.404"), and a flat key containing dots shadows the nested
// path it spells.
//
// # Pluralization
//
// A numeric "count" value selects a plural variant. Keys may pin exact
// counts or CLDR categories, flat or nested; exact counts win over
// categories and flat forms over nested ones:
//
//	i18n.WithTranslations("en", "app", map[string]any{
//		"item_0":     "no items",
//		"item_one":   "{{count}} item",
//		"item_other": "{{count}} items",
//	})
//
//	bundle.Tn("en", "app:item", 0)  // "no items"
//	bundle.Tn("en", "app:item", 1)  // "1 item"
//	bundle.Tn("en", "app:item", 5)  // "5 items"
//
// Category selection uses the CLDR rule for the resolved language, so
// Polish picks "few" for 2 and "many" for 12. Custom rules can be
// registered per language with WithPluralRule.
//
// # Template Syntax
//
// Plain templates use "{{name}}" placeholders with an optional format
// function ("{{amount, currency}}"). Templates that start with "{{", or
// with a ".match", ".local" or ".input" declaration, are treated as full
// messageformat sources and passed to the engine untouched:
//
//	"files": ".input {$count :number}\n" +
//		".match $count\n" +
//		"0 {{no files}}\n" +
//		"one {{{$count} file}}\n" +
//		"* {{{$count} files}}"
//
//	bundle.Tn("en", "app:files", 1) // "1 file"
//
// # Markup Rendering
//
// Markup resolves a key, rewrites HTML-like tags into markup placeholders
// and renders the result onto templ components. Tags may be named ("<b>")
// or positional ("<0>"); tags without a matching component are erased,
// keeping their content:
//
//	terms := bundle.Markup("en", "app:terms", markup.Map{
//		"link": linkComponent,
//	})
//
// See the markup package for the component contract.
//
// # Lookup Options
//
// Translate accepts per-lookup options for namespace override, context
// qualifiers, fallback keys and default values:
//
//	bundle.Translate("en", "friend", nil,
//		i18n.WithContext("female"),      // tries friend_female first
//		i18n.WithFallbackKeys("person"), // tried if friend misses
//	)
//
// # Request Locale
//
// SetLocale stores a language code in a context and Locale reads it back;
// the HTTP middleware does this after language detection. Tc and Tnc are T
// and Tn with the language taken from the context:
//
//	msg := bundle.Tc(r.Context(), "app:welcome")
//
// # Missing Keys
//
// A lookup that resolves nothing returns the key itself and reports the
// miss, by default as a debug log line. WithMissingKeyHandler replaces the
// logging with a custom callback, which is useful for collecting missing
// translations during development, and WithoutMissingKeyLogging drops the
// log line entirely.
//
// # Legacy Interpolation
//
// WithLegacyFormatter bypasses the formatting engine for plain text
// lookups and substitutes placeholders by calling the supplied function
// per match. Markup rendering always uses the engine.
package i18n
