// Package middleware provides net/http middleware for request-scoped
// localization. It detects the request language, binds a translator to it
// and stores the translator in the request context for handlers to use.
//
// # Language Detection
//
// The default detection chain checks, in order, a query parameter, a cookie
// and the Accept-Language header, accepting only languages the bundle
// actually has. When nothing matches, the fallback language applies. Each
// source can be renamed or the whole chain replaced through I18nConfig.
//
//	bundle, _ := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", "app", enDict),
//		i18n.WithTranslations("de", "app", deDict),
//	)
//
//	mux := http.NewServeMux()
//	mux.Handle("/", middleware.I18n(bundle, "app")(appHandler))
//
// # Using the Translator
//
// Handlers retrieve the request's translator from the context:
//
//	func appHandler(w http.ResponseWriter, r *http.Request) {
//		t, ok := middleware.GetTranslator(r.Context())
//		if !ok {
//			t = bundle.Translator(bundle.DefaultLanguage())
//		}
//		fmt.Fprint(w, t.T("greeting", i18n.M{"name": userName}))
//	}
//
// The detected language code itself is stored with i18n.SetLocale, so
// bundle.Tc(r.Context(), "app:greeting") translates without the translator.
//
// # Advanced Configuration
//
// I18nWithConfig exposes the detection chain:
//
//	mux.Handle("/", middleware.I18nWithConfig(middleware.I18nConfig{
//		Bundle:           bundle,
//		Namespace:        "app",
//		QueryParam:       "locale",
//		CookieName:       "preferred_lang",
//		FallbackLanguage: "en",
//		Skip: func(r *http.Request) bool {
//			return strings.HasPrefix(r.URL.Path, "/api/")
//		},
//	})(appHandler))
package middleware
