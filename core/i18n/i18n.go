package i18n

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/lingo/core/markup"
	"github.com/dmitrymomot/lingo/core/messageformat"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// DefaultNamespace is the namespace used for keys that do not embed one.
const DefaultNamespace = "translation"

const (
	defaultNSSeparator  = ":"
	defaultKeySeparator = "."
	defaultPrefix       = "{{"
	defaultSuffix       = "}}"

	// maxObjectDepth bounds recursion over dictionary subtrees so a
	// degenerate dictionary cannot exhaust the stack.
	maxObjectDepth = 100
)

// Bundle holds dictionaries for a set of languages and resolves, pluralizes
// and interpolates translations. It is immutable after creation, making it
// safe for concurrent use.
type Bundle struct {
	// Dictionaries per language and namespace
	dictionaries map[string]map[string]Object

	// Pre-computed list of available languages (for O(1) access)
	languages []string

	defaultLang  string
	defaultNS    string
	nsSeparator  string
	keySeparator string

	// Plural rules per language, filled for every known language during
	// construction
	pluralRules map[string]messageformat.PluralRule

	// Locale-specific number and date formats per language
	formats map[string]*messageformat.Formats

	// Pre-built formatting engines per known language
	formatters map[string]*messageformat.Formatter

	// Custom formatting functions shared by all languages
	funcs map[string]messageformat.Func

	// Active interpolation strategy; the engine is kept separately because
	// the markup path always formats through the engine
	strategy interpolator
	engine   engineStrategy

	legacyFormatter Formatter
	prefix          string
	suffix          string

	// Empty-string leaves count as found unless disabled
	emptyLeaves bool

	// Missing keys log at debug level unless disabled
	logMissing bool

	log *slog.Logger

	// Optional handler called when a translation key is not found
	missingKeyHandler func(lang, namespace, key string)
}

// Option configures the Bundle during construction.
type Option func(*Bundle) error

// New creates a new Bundle with the given options. All configuration
// happens during construction, making the instance immutable and
// thread-safe from creation.
func New(opts ...Option) (*Bundle, error) {
	b := &Bundle{
		dictionaries: make(map[string]map[string]Object),
		pluralRules:  make(map[string]messageformat.PluralRule),
		formats:      make(map[string]*messageformat.Formats),
		funcs:        make(map[string]messageformat.Func),
		defaultLang:  DefaultLang,
		defaultNS:    DefaultNamespace,
		nsSeparator:  defaultNSSeparator,
		keySeparator: defaultKeySeparator,
		prefix:       defaultPrefix,
		suffix:       defaultSuffix,
		emptyLeaves:  true,
		logMissing:   true,
		log:          slog.Default(),
	}

	// Apply all options
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	// Validate configuration
	if b.defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}
	if b.prefix == "" || b.suffix == "" {
		return nil, fmt.Errorf("placeholder prefix and suffix cannot be empty")
	}

	b.engine = engineStrategy{prefix: b.prefix, suffix: b.suffix}
	if b.legacyFormatter != nil {
		b.strategy = newLegacyStrategy(b.prefix, b.suffix, b.legacyFormatter)
	} else {
		b.strategy = b.engine
	}

	if len(b.languages) == 0 {
		b.languages = b.buildLanguagesList()
	}
	if _, ok := b.formats[b.defaultLang]; !ok {
		b.formats[b.defaultLang] = messageformat.NewFormats()
	}

	// Pre-build plural rules and formatting engines for every language the
	// bundle can resolve into
	known := b.knownLanguages()
	for _, lang := range known {
		if _, ok := b.pluralRules[lang]; !ok {
			b.pluralRules[lang] = messageformat.PluralRuleFor(lang)
		}
	}
	b.formatters = make(map[string]*messageformat.Formatter, len(known))
	for _, lang := range known {
		b.formatters[lang] = b.buildFormatter(lang)
	}

	return b, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(b *Bundle) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		b.defaultLang = lang
		return nil
	}
}

// WithLanguages sets the supported languages for the bundle.
// The default language will always be included and placed first in the list.
// Other languages will be sorted alphabetically.
func WithLanguages(langs ...string) Option {
	return func(b *Bundle) error {
		if len(langs) == 0 {
			return nil
		}

		langSet := make(map[string]bool)
		for _, lang := range langs {
			if lang != "" {
				langSet[lang] = true
			}
		}
		delete(langSet, b.defaultLang)

		b.languages = make([]string, 0, len(langSet)+1)
		b.languages = append(b.languages, b.defaultLang)

		otherLangs := make([]string, 0, len(langSet))
		for lang := range langSet {
			otherLangs = append(otherLangs, lang)
		}
		sort.Strings(otherLangs)
		b.languages = append(b.languages, otherLangs...)

		return nil
	}
}

// WithTranslations loads translations for a specific language and namespace
// from a plain nested map, the shape produced by decoding a JSON or YAML
// dictionary file. Loading the same namespace twice merges the maps with
// the later load winning on conflicts.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(b *Bundle) error {
		return b.addDictionary(lang, namespace, FromMap(translations))
	}
}

// WithDictionary loads an already tagged dictionary for a specific language
// and namespace.
func WithDictionary(lang, namespace string, dict Object) Option {
	return func(b *Bundle) error {
		return b.addDictionary(lang, namespace, dict)
	}
}

func (b *Bundle) addDictionary(lang, namespace string, dict Object) error {
	if lang == "" {
		return fmt.Errorf("language cannot be empty")
	}
	if namespace == "" {
		return fmt.Errorf("namespace cannot be empty")
	}
	if len(dict) == 0 {
		return nil // Empty dictionaries are allowed
	}

	if b.dictionaries[lang] == nil {
		b.dictionaries[lang] = make(map[string]Object)
	}
	existing, ok := b.dictionaries[lang][namespace]
	if !ok {
		existing = make(Object, len(dict))
		b.dictionaries[lang][namespace] = existing
	}
	maps.Copy(existing, dict)
	return nil
}

// WithPluralRule registers a custom plural rule for a language, overriding
// the CLDR rule derived from the language tag.
func WithPluralRule(lang string, rule messageformat.PluralRule) Option {
	return func(b *Bundle) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		if rule == nil {
			return fmt.Errorf("plural rule cannot be nil")
		}
		b.pluralRules[lang] = rule
		return nil
	}
}

// WithFormats registers locale-specific number and date formats for a
// language.
func WithFormats(lang string, formats *messageformat.Formats) Option {
	return func(b *Bundle) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		if formats == nil {
			return fmt.Errorf("formats cannot be nil")
		}
		b.formats[lang] = formats
		return nil
	}
}

// WithFunc registers a custom formatting function available to all
// languages under the given name.
func WithFunc(name string, fn messageformat.Func) Option {
	return func(b *Bundle) error {
		if name == "" {
			return fmt.Errorf("function name cannot be empty")
		}
		if fn == nil {
			return fmt.Errorf("function cannot be nil")
		}
		b.funcs[name] = fn
		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a
// translation key is not found in any language (including the default
// fallback). It replaces the default debug log line. The handler receives
// the requested language, namespace, and key.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(b *Bundle) error {
		b.missingKeyHandler = handler
		return nil
	}
}

// WithLogger sets the logger used for missing keys and degraded lookups.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bundle) error {
		if log == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		b.log = log
		return nil
	}
}

// WithNamespaceSeparator changes the token that splits an embedded
// namespace from the key ("common:title"). An empty separator disables
// namespace splitting so keys always resolve in the default namespace.
func WithNamespaceSeparator(sep string) Option {
	return func(b *Bundle) error {
		b.nsSeparator = sep
		return nil
	}
}

// WithKeySeparator changes the token that splits a key into nested path
// segments ("errors.http.404"). An empty separator disables nesting so
// keys match dictionary entries verbatim.
func WithKeySeparator(sep string) Option {
	return func(b *Bundle) error {
		b.keySeparator = sep
		return nil
	}
}

// WithDefaultNamespace changes the namespace used for keys that do not
// embed one.
func WithDefaultNamespace(namespace string) Option {
	return func(b *Bundle) error {
		if namespace == "" {
			return fmt.Errorf("namespace cannot be empty")
		}
		b.defaultNS = namespace
		return nil
	}
}

// WithPlaceholderSyntax changes the legacy placeholder delimiters, "{{"
// and "}}" by default.
func WithPlaceholderSyntax(prefix, suffix string) Option {
	return func(b *Bundle) error {
		if prefix == "" || suffix == "" {
			return fmt.Errorf("placeholder prefix and suffix cannot be empty")
		}
		b.prefix = prefix
		b.suffix = suffix
		return nil
	}
}

// WithLegacyFormatter switches text interpolation to direct placeholder
// substitution through the given formatter, bypassing the formatting
// engine. Markup rendering always uses the engine regardless.
func WithLegacyFormatter(formatter Formatter) Option {
	return func(b *Bundle) error {
		if formatter == nil {
			return fmt.Errorf("formatter cannot be nil")
		}
		b.legacyFormatter = formatter
		return nil
	}
}

// WithoutEmptyStrings makes empty-string dictionary values count as
// missing, so lookups fall through to the next candidate instead of
// returning "".
func WithoutEmptyStrings() Option {
	return func(b *Bundle) error {
		b.emptyLeaves = false
		return nil
	}
}

// WithoutMissingKeyLogging disables the debug log record for missing keys.
// A handler set with WithMissingKeyHandler still runs.
func WithoutMissingKeyLogging() Option {
	return func(b *Bundle) error {
		b.logMissing = false
		return nil
	}
}

// lookupConfig carries per-lookup options.
type lookupConfig struct {
	namespace    string
	fallbackKeys []string
	defaultValue string
	hasDefault   bool
	context      string
}

// LookupOption adjusts a single lookup.
type LookupOption func(*lookupConfig)

// WithNamespace overrides the default namespace for this lookup. A
// namespace embedded in the key still wins.
func WithNamespace(namespace string) LookupOption {
	return func(cfg *lookupConfig) {
		cfg.namespace = namespace
	}
}

// WithFallbackKeys sets alternative keys tried in order when the primary
// key resolves to nothing.
func WithFallbackKeys(keys ...string) LookupOption {
	return func(cfg *lookupConfig) {
		cfg.fallbackKeys = keys
	}
}

// WithDefault sets the text returned (after interpolation) when the key
// resolves to nothing. It is ignored when fallback keys are also given;
// the raw key is returned in that case.
func WithDefault(value string) LookupOption {
	return func(cfg *lookupConfig) {
		cfg.defaultValue = value
		cfg.hasDefault = true
	}
}

// WithContext appends a context qualifier to the key, so "friend" with
// context "male" tries "friend_male" before "friend".
func WithContext(context string) LookupOption {
	return func(cfg *lookupConfig) {
		cfg.context = context
	}
}

// T retrieves a translation for the given language and key. The key may
// embed a namespace ("common:title"); a numeric "count" query value
// triggers pluralization. Placeholders are replaced with values from the
// provided maps. Falls back to the base language and then the default
// language, and returns the key itself if no translation exists.
// Formatting errors are logged, never returned.
func (b *Bundle) T(lang, key string, query ...M) string {
	return b.Translate(lang, key, mergeQuery(query...))
}

// Tn retrieves a pluralized translation for the given count. The count is
// injected into the query as "count" so templates can interpolate it.
func (b *Bundle) Tn(lang, key string, count float64, query ...M) string {
	merged := mergeQuery(query...)
	merged["count"] = count
	return b.Translate(lang, key, merged)
}

// Td retrieves a translation with a static default returned when the key
// resolves to nothing. The default is interpolated like a regular template.
func (b *Bundle) Td(lang, key, defaultValue string, query ...M) string {
	return b.Translate(lang, key, mergeQuery(query...), WithDefault(defaultValue))
}

// Translate is T with full lookup control. Formatting errors are logged
// and the unformatted text is returned in their place.
func (b *Bundle) Translate(lang, key string, query M, opts ...LookupOption) string {
	out, err := b.Lookup(lang, key, query, opts...)
	if err != nil {
		b.log.Error("translation formatting failed",
			slog.String("language", lang),
			slog.String("key", key),
			slog.String("error", err.Error()))
		if out == "" {
			return key
		}
	}
	return out
}

// Lookup resolves and interpolates a translation, surfacing formatting
// errors instead of swallowing them. Malformed templates still degrade to
// their raw text; only engine configuration failures (bad option values,
// failing custom functions) produce an error. On error the raw resolved
// template is returned alongside it.
func (b *Bundle) Lookup(lang, key string, query M, opts ...LookupOption) (string, error) {
	var cfg lookupConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if query == nil {
		query = M{}
	}

	out, found, err := b.lookupText(lang, key, query, cfg)
	if err != nil {
		return out, err
	}
	if !found {
		// Return the key as last resort
		return key, nil
	}
	return out, nil
}

// lookupText runs the full resolution pipeline for one key: candidate
// resolution across the language chain, then fallback keys, then the
// default value. It reports whether anything resolved so callers can tell
// a translated empty string from a miss.
func (b *Bundle) lookupText(lang, key string, query M, cfg lookupConfig) (string, bool, error) {
	namespace, bare := b.splitKey(key, cfg)
	res, ok := b.resolveKey(lang, namespace, bare, countOf(query), cfg)
	if ok {
		if leaf, isLeaf := res.value.(Leaf); isLeaf {
			out, err := b.interpolate(res.lang, string(leaf), query)
			if err != nil {
				return string(leaf), true, err
			}
			return out, true, nil
		}
		// A subtree cannot render as text; treat it as a miss so fallbacks
		// get their chance.
	}
	b.reportMissing(lang, namespace, bare)

	for _, fallback := range cfg.fallbackKeys {
		sub := cfg
		sub.fallbackKeys = nil
		sub.hasDefault = false
		if out, found, err := b.lookupText(lang, fallback, query, sub); err != nil || found {
			return out, found, err
		}
	}

	if cfg.hasDefault && len(cfg.fallbackKeys) == 0 {
		out, err := b.interpolate(lang, cfg.defaultValue, query)
		if err != nil {
			return cfg.defaultValue, true, err
		}
		return out, true, nil
	}

	return "", false, nil
}

// Has reports whether the key resolves to any value (leaf or subtree) for
// the language or one of its fallbacks. It never logs or reports missing
// keys.
func (b *Bundle) Has(lang, key string, opts ...LookupOption) bool {
	var cfg lookupConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	namespace, bare := b.splitKey(key, cfg)
	_, ok := b.resolveKey(lang, namespace, bare, nil, cfg)
	return ok
}

// Object resolves a key to its subtree with every string leaf
// interpolated, for consumers that want a whole group of translations at
// once. A key equal to the key separator returns the entire namespace.
// Returns false when the key is missing or resolves to a plain string.
func (b *Bundle) Object(lang, key string, query ...M) (map[string]any, bool) {
	merged := mergeQuery(query...)
	namespace, bare := b.splitKey(key, lookupConfig{})

	if b.keySeparator != "" && bare == b.keySeparator {
		for _, candidate := range b.languageChain(lang) {
			dict, ok := b.dictionaries[candidate][namespace]
			if !ok {
				continue
			}
			return b.objectResult(lang, candidate, bare, dict, merged)
		}
		b.reportMissing(lang, namespace, bare)
		return nil, false
	}

	res, ok := b.resolveKey(lang, namespace, bare, countOf(merged), lookupConfig{})
	if !ok {
		b.reportMissing(lang, namespace, bare)
		return nil, false
	}
	subtree, isObject := res.value.(Object)
	if !isObject {
		return nil, false
	}
	return b.objectResult(lang, res.lang, bare, subtree, merged)
}

func (b *Bundle) objectResult(lang, resolvedLang, key string, subtree Object, query M) (map[string]any, bool) {
	out, err := b.interpolateObject(resolvedLang, subtree, query, 0)
	if err != nil {
		b.log.Error("translation subtree formatting failed",
			slog.String("language", lang),
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}
	return out, true
}

func (b *Bundle) interpolateObject(lang string, subtree Object, query M, depth int) (map[string]any, error) {
	if depth > maxObjectDepth {
		return nil, fmt.Errorf("dictionary nesting exceeds %d levels", maxObjectDepth)
	}
	out := make(map[string]any, len(subtree))
	for key, value := range subtree {
		switch entry := value.(type) {
		case Leaf:
			text, err := b.interpolate(lang, string(entry), query)
			if err != nil {
				return nil, err
			}
			out[key] = text
		case Object:
			nested, err := b.interpolateObject(lang, entry, query, depth+1)
			if err != nil {
				return nil, err
			}
			out[key] = nested
		}
	}
	return out, nil
}

// Markup resolves a key and renders its template onto the given
// components. HTML-like tags ("<b>", "<0>", "<br/>") are rewritten into
// markup placeholders, the formatted parts are reconstructed into a tree
// and each span is wrapped by the matching component. Missing keys render
// the key text and malformed templates degrade to the escaped raw template
// with a log line; non-syntax formatting errors surface when the returned
// component renders.
func (b *Bundle) Markup(lang, key string, components markup.Source, query ...M) templ.Component {
	merged := mergeQuery(query...)
	namespace, bare := b.splitKey(key, lookupConfig{})

	template := key
	templateLang := lang
	res, ok := b.resolveKey(lang, namespace, bare, countOf(merged), lookupConfig{})
	if leaf, isLeaf := res.value.(Leaf); ok && isLeaf {
		template = string(leaf)
		templateLang = res.lang
	} else {
		b.reportMissing(lang, namespace, bare)
	}

	return b.renderMarkup(templateLang, template, merged, components)
}

func (b *Bundle) renderMarkup(lang, template string, query M, components markup.Source) templ.Component {
	src := template
	if !isTemplateSource(template) {
		src = markup.RewriteTags(b.engine.normalize(template))
	}

	msg, err := messageformat.Parse(src)
	if err != nil {
		b.log.Warn("markup template is malformed, rendering raw text",
			slog.String("language", lang),
			slog.String("error", err.Error()))
		return markup.Text(template)
	}
	parts, err := b.formatterFor(lang).FormatToParts(msg, query)
	if err != nil {
		return markup.Fail(fmt.Errorf("failed to format markup template: %w", err))
	}

	tree := markup.Reconstruct(parts, markup.WithLogger(b.log))
	return markup.Render(tree, components)
}

// Languages returns all configured languages. The default language is
// always first, followed by other languages sorted alphabetically. This is
// an O(1) operation as the list is pre-computed during construction.
func (b *Bundle) Languages() []string {
	return b.languages
}

// DefaultLanguage returns the default language code configured for the
// bundle. If no default language was explicitly set, returns DefaultLang
// ("en").
func (b *Bundle) DefaultLanguage() string {
	return b.defaultLang
}

// Formats returns the number and date formats for a language, falling back
// along the language chain to the default-language formats.
func (b *Bundle) Formats(lang string) *messageformat.Formats {
	for _, candidate := range b.languageChain(lang) {
		if formats, ok := b.formats[candidate]; ok {
			return formats
		}
	}
	return b.formats[b.defaultLang]
}

// splitKey separates an embedded namespace from the key proper. A
// namespace embedded in the key wins over the per-lookup override, which
// wins over the default namespace.
func (b *Bundle) splitKey(key string, cfg lookupConfig) (namespace, bare string) {
	if b.nsSeparator != "" {
		if head, rest, found := strings.Cut(key, b.nsSeparator); found && head != "" && rest != "" {
			return head, rest
		}
	}
	if cfg.namespace != "" {
		return cfg.namespace, key
	}
	return b.defaultNS, key
}

// resolved carries a successful resolution with the language that supplied
// it, so interpolation can use that language's plural rule and formats.
type resolved struct {
	value Value
	lang  string
}

// resolveKey walks the language chain and, within each language, the
// ordered candidate keys. The first usable hit wins; the requested
// language is searched exhaustively before the chain falls back.
func (b *Bundle) resolveKey(lang, namespace, key string, count *float64, cfg lookupConfig) (resolved, bool) {
	for _, candidateLang := range b.languageChain(lang) {
		dict, ok := b.dictionaries[candidateLang][namespace]
		if !ok {
			continue
		}
		rule := b.pluralRuleFor(candidateLang)
		for _, candidate := range candidateKeys(key, cfg.context, count, b.keySeparator, rule) {
			value, ok := dict.resolve(candidate, b.keySeparator)
			if !ok || !b.usable(value) {
				continue
			}
			return resolved{value: value, lang: candidateLang}, true
		}
	}
	return resolved{}, false
}

// usable filters values a lookup may return: empty subtrees never count,
// empty leaves only when the bundle allows them.
func (b *Bundle) usable(v Value) bool {
	switch value := v.(type) {
	case Leaf:
		return b.emptyLeaves || value != ""
	case Object:
		return len(value) > 0
	}
	return false
}

// languageChain lists the languages tried for a lookup: the requested
// language, its base language when the tag carries a region ("en-GB" to
// "en"), then the default language.
func (b *Bundle) languageChain(lang string) []string {
	chain := make([]string, 0, 3)
	push := func(l string) {
		if l != "" && !slices.Contains(chain, l) {
			chain = append(chain, l)
		}
	}
	push(lang)
	if base, _, found := strings.Cut(lang, "-"); found {
		push(base)
	}
	push(b.defaultLang)
	return chain
}

func (b *Bundle) pluralRuleFor(lang string) messageformat.PluralRule {
	if rule, ok := b.pluralRules[lang]; ok {
		return rule
	}
	return messageformat.PluralRuleFor(lang)
}

func (b *Bundle) interpolate(lang, template string, query M) (string, error) {
	return b.strategy.interpolate(template, query, b.formatterFor(lang), lang)
}

func (b *Bundle) formatterFor(lang string) *messageformat.Formatter {
	if formatter, ok := b.formatters[lang]; ok {
		return formatter
	}
	if formatter, ok := b.formatters[b.defaultLang]; ok {
		return formatter
	}
	return messageformat.NewFormatter()
}

func (b *Bundle) buildFormatter(lang string) *messageformat.Formatter {
	opts := []messageformat.FormatterOption{
		messageformat.WithLocale(lang),
		messageformat.WithPluralRule(b.pluralRuleFor(lang)),
		messageformat.WithFormats(b.Formats(lang)),
	}
	for name, fn := range b.funcs {
		opts = append(opts, messageformat.WithFunc(name, fn))
	}
	return messageformat.NewFormatter(opts...)
}

// reportMissing invokes the missing-key handler, or logs at debug level
// when none is configured.
func (b *Bundle) reportMissing(lang, namespace, key string) {
	if b.missingKeyHandler != nil {
		b.missingKeyHandler(lang, namespace, key)
		return
	}
	if !b.logMissing {
		return
	}
	b.log.Debug("missing translation",
		slog.String("language", lang),
		slog.String("namespace", namespace),
		slog.String("key", key))
}

// knownLanguages collects every language the bundle can resolve into: the
// default, every dictionary language and the configured language list.
func (b *Bundle) knownLanguages() []string {
	known := make([]string, 0, len(b.dictionaries)+len(b.languages)+1)
	push := func(lang string) {
		if lang != "" && !slices.Contains(known, lang) {
			known = append(known, lang)
		}
	}
	push(b.defaultLang)
	for _, lang := range b.languages {
		push(lang)
	}
	for lang := range b.dictionaries {
		push(lang)
	}
	return known
}

// buildLanguagesList builds the pre-computed list of languages when
// WithLanguages was not used: the default language first, then every
// dictionary language sorted alphabetically.
func (b *Bundle) buildLanguagesList() []string {
	others := make([]string, 0, len(b.dictionaries))
	for lang := range b.dictionaries {
		if lang != b.defaultLang {
			others = append(others, lang)
		}
	}
	sort.Strings(others)
	return append([]string{b.defaultLang}, others...)
}

// mergeQuery merges variadic query maps into one, later maps winning.
func mergeQuery(query ...M) M {
	merged := make(M)
	for _, q := range query {
		maps.Copy(merged, q)
	}
	return merged
}

// countOf extracts a numeric count from the query. A missing or
// non-numeric count does not trigger pluralization.
func countOf(query M) *float64 {
	if query == nil {
		return nil
	}
	var count float64
	switch n := query["count"].(type) {
	case int:
		count = float64(n)
	case int8:
		count = float64(n)
	case int16:
		count = float64(n)
	case int32:
		count = float64(n)
	case int64:
		count = float64(n)
	case uint:
		count = float64(n)
	case uint8:
		count = float64(n)
	case uint16:
		count = float64(n)
	case uint32:
		count = float64(n)
	case uint64:
		count = float64(n)
	case float32:
		count = float64(n)
	case float64:
		count = n
	default:
		return nil
	}
	return &count
}
