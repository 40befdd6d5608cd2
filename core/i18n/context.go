package i18n

import "context"

// localeContextKey is the context key for the request language code.
type localeContextKey struct{}

// SetLocale returns a context carrying the given language code. The HTTP
// middleware sets it after language detection; Tc and Tnc read it back.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// Locale returns the language code carried by the context, or an empty
// string when none was set.
func Locale(ctx context.Context) string {
	lang, _ := ctx.Value(localeContextKey{}).(string)
	return lang
}

// Tc is T with the language taken from the context. A context without a
// locale uses the bundle's default language.
func (b *Bundle) Tc(ctx context.Context, key string, query ...M) string {
	return b.T(b.contextLanguage(ctx), key, query...)
}

// Tnc is Tn with the language taken from the context.
func (b *Bundle) Tnc(ctx context.Context, key string, count float64, query ...M) string {
	return b.Tn(b.contextLanguage(ctx), key, count, query...)
}

func (b *Bundle) contextLanguage(ctx context.Context) string {
	if lang := Locale(ctx); lang != "" {
		return lang
	}
	return b.defaultLang
}
