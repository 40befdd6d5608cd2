package i18n

import (
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/lingo/core/markup"
)

// Translator provides a simplified translation interface with a fixed language and namespace context.
// It wraps a Bundle and eliminates the need to specify language and namespace for each translation.
type Translator struct {
	bundle    *Bundle
	language  string
	namespace string
}

// NewTranslator creates a new Translator with the specified language and namespace context.
// An empty language falls back to the bundle's default language; an empty
// namespace falls back to the bundle's default namespace.
func NewTranslator(bundle *Bundle, language, namespace string) *Translator {
	if bundle == nil {
		panic("localization service is not provided")
	}
	if language == "" {
		language = bundle.DefaultLanguage()
	}
	return &Translator{
		bundle:    bundle,
		language:  language,
		namespace: namespace,
	}
}

// Translator returns a Translator bound to this bundle and the given
// language, using the bundle's default namespace.
func (b *Bundle) Translator(language string) *Translator {
	return NewTranslator(b, language, "")
}

// T translates a key using the translator's language and namespace context.
// Placeholders in the translation are replaced with values from the provided maps.
func (t *Translator) T(key string, query ...M) string {
	return t.bundle.Translate(t.language, key, mergeQuery(query...), t.lookupOptions()...)
}

// Tn translates a key with pluralization using the translator's language and namespace context.
// It automatically selects the appropriate plural form based on the count and language rules.
func (t *Translator) Tn(key string, count float64, query ...M) string {
	merged := mergeQuery(query...)
	merged["count"] = count
	return t.bundle.Translate(t.language, key, merged, t.lookupOptions()...)
}

// Td translates a key with a static default returned when the key resolves
// to nothing.
func (t *Translator) Td(key, defaultValue string, query ...M) string {
	opts := append(t.lookupOptions(), WithDefault(defaultValue))
	return t.bundle.Translate(t.language, key, mergeQuery(query...), opts...)
}

// Translate is T with full lookup control. Options given here are applied
// after the translator's namespace, so they can override it.
func (t *Translator) Translate(key string, query M, opts ...LookupOption) string {
	return t.bundle.Translate(t.language, key, query, append(t.lookupOptions(), opts...)...)
}

// Has reports whether the key resolves for the translator's language.
func (t *Translator) Has(key string) bool {
	return t.bundle.Has(t.language, key, t.lookupOptions()...)
}

// Markup resolves a key and renders its markup template onto components
// using the translator's language.
func (t *Translator) Markup(key string, components markup.Source, query ...M) templ.Component {
	return t.bundle.Markup(t.language, t.qualify(key), components, query...)
}

// Language returns the current language context of the translator.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the current namespace context of the translator.
func (t *Translator) Namespace() string {
	return t.namespace
}

// FormatNumber formats a number with locale-specific separators.
// For example, in English: 1234.5 -> "1,234.5", in German: "1.234,5"
func (t *Translator) FormatNumber(n float64) string {
	return t.bundle.Formats(t.language).FormatNumber(n)
}

// FormatCurrency formats a currency amount with locale-specific formatting.
// For example, in English: 1234.50 -> "$1,234.50", in German: "1.234,50 €"
func (t *Translator) FormatCurrency(amount float64) string {
	return t.bundle.Formats(t.language).FormatCurrency(amount)
}

// FormatPercent formats a percentage with locale-specific formatting.
// The input should be a decimal (0.5 for 50%).
// For example, in English: 0.5 -> "50%", in French: "50 %"
func (t *Translator) FormatPercent(n float64) string {
	return t.bundle.Formats(t.language).FormatPercent(n)
}

// FormatDate formats a date with locale-specific formatting.
// For example, in US English: "01/02/2006", in German: "02.01.2006"
func (t *Translator) FormatDate(date time.Time) string {
	return t.bundle.Formats(t.language).FormatDate(date)
}

// FormatTime formats a time with locale-specific formatting.
// For example, in US English: "3:04 PM", in German: "15:04"
func (t *Translator) FormatTime(moment time.Time) string {
	return t.bundle.Formats(t.language).FormatTime(moment)
}

// FormatDateTime formats a datetime with locale-specific formatting.
// Combines date and time formatting for the locale.
func (t *Translator) FormatDateTime(datetime time.Time) string {
	return t.bundle.Formats(t.language).FormatDateTime(datetime)
}

func (t *Translator) lookupOptions() []LookupOption {
	if t.namespace == "" {
		return nil
	}
	return []LookupOption{WithNamespace(t.namespace)}
}

// qualify embeds the translator's namespace into a key that does not
// already carry one, for the bundle operations without lookup options.
func (t *Translator) qualify(key string) string {
	if t.namespace == "" || t.bundle.nsSeparator == "" || strings.Contains(key, t.bundle.nsSeparator) {
		return key
	}
	return t.namespace + t.bundle.nsSeparator + key
}
