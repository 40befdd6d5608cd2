package i18n

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/lingo/core/messageformat"
)

// Formatter is the legacy interpolation hook. It receives the resolved
// variable value, the format name from the placeholder ("{{sum, currency}}"
// passes "currency", a bare "{{sum}}" passes "") and the language, and
// returns the replacement text.
type Formatter func(value any, format, lang string) string

// interpolator is an interpolation strategy fixed at bundle construction.
// The engine strategy normalizes templates into the message grammar and
// formats them through the formatting engine; the legacy strategy
// substitutes placeholders in place with a custom Formatter.
type interpolator interface {
	interpolate(template string, vars map[string]any, f *messageformat.Formatter, lang string) (string, error)
}

// isTemplateSource reports whether a template is already written in the
// message grammar and must skip placeholder normalization. Detection is by
// leading token only; a legacy template that happens to start with the
// placeholder prefix is claimed by the grammar.
func isTemplateSource(template string) bool {
	trimmed := strings.TrimLeft(template, " \t\r\n")
	return strings.HasPrefix(trimmed, "{{") ||
		strings.HasPrefix(trimmed, ".match") ||
		strings.HasPrefix(trimmed, ".local") ||
		strings.HasPrefix(trimmed, ".input")
}

type engineStrategy struct {
	prefix string
	suffix string
}

func (s engineStrategy) interpolate(template string, vars map[string]any, f *messageformat.Formatter, lang string) (string, error) {
	if template == "" {
		return "", nil
	}
	msg, err := messageformat.Parse(s.normalize(template))
	if err != nil {
		// Malformed templates degrade to their raw text instead of failing
		// the lookup.
		return template, nil
	}
	out, err := f.Format(msg, vars)
	if err != nil {
		return "", err
	}
	return out, nil
}

// normalize rewrites legacy "{{name}}" and "{{name, format}}" placeholders
// into grammar placeholders and escapes the characters the grammar treats
// specially in literal text. Templates already in the grammar pass through
// untouched.
func (s engineStrategy) normalize(template string) string {
	if isTemplateSource(template) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 8)
	rest := template
	for {
		idx := strings.Index(rest, s.prefix)
		if idx < 0 {
			writeEscaped(&b, rest)
			return b.String()
		}
		end := strings.Index(rest[idx+len(s.prefix):], s.suffix)
		if end < 0 {
			writeEscaped(&b, rest)
			return b.String()
		}
		writeEscaped(&b, rest[:idx])
		inner := rest[idx+len(s.prefix) : idx+len(s.prefix)+end]
		s.writePlaceholder(&b, inner)
		rest = rest[idx+len(s.prefix)+end+len(s.suffix):]
	}
}

func (s engineStrategy) writePlaceholder(b *strings.Builder, inner string) {
	name, format, hasFormat := strings.Cut(inner, ",")
	name = strings.TrimSpace(name)
	format = strings.TrimSpace(format)

	if !validPlaceholderName(name) {
		// Not expressible as a grammar placeholder; keep the original text.
		writeEscaped(b, s.prefix+inner+s.suffix)
		return
	}
	b.WriteString("{$")
	b.WriteString(name)
	if hasFormat && validPlaceholderName(format) {
		b.WriteString(" :")
		b.WriteString(format)
	}
	b.WriteByte('}')
}

// writeEscaped copies text into the builder, backslash-escaping the four
// characters with grammar meaning.
func writeEscaped(b *strings.Builder, text string) {
	for i := range len(text) {
		switch c := text[i]; c {
		case '{', '}', '|', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
}

// NormalizeTemplate rewrites legacy placeholders in a template into the
// message grammar using the given delimiters; empty delimiters mean the
// defaults. Templates already written in the grammar pass through untouched.
// This is the same rewrite a bundle applies before parsing, exposed for
// tooling that validates dictionaries without constructing a bundle.
func NormalizeTemplate(template, prefix, suffix string) string {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if suffix == "" {
		suffix = defaultSuffix
	}
	return engineStrategy{prefix: prefix, suffix: suffix}.normalize(template)
}

// validPlaceholderName matches the grammar's name rule: a letter or
// underscore first, then letters, digits, underscores, hyphens or dots.
func validPlaceholderName(name string) bool {
	if name == "" {
		return false
	}
	for i := range len(name) {
		switch c := name[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

type legacyStrategy struct {
	pattern   *regexp.Regexp
	formatter Formatter
}

func newLegacyStrategy(prefix, suffix string, formatter Formatter) legacyStrategy {
	return legacyStrategy{
		pattern:   regexp.MustCompile(regexp.QuoteMeta(prefix) + `(.*?)` + regexp.QuoteMeta(suffix)),
		formatter: formatter,
	}
}

func (s legacyStrategy) interpolate(template string, vars map[string]any, _ *messageformat.Formatter, lang string) (string, error) {
	if template == "" {
		return "", nil
	}
	out := s.pattern.ReplaceAllStringFunc(template, func(match string) string {
		inner := s.pattern.FindStringSubmatch(match)[1]
		name, format, _ := strings.Cut(inner, ",")
		value, ok := queryValue(vars, strings.TrimSpace(name))
		if !ok {
			// Missing variables substitute as empty text on this path.
			return ""
		}
		return s.formatter(value, strings.TrimSpace(format), lang)
	})
	return out, nil
}

// queryValue resolves a possibly dotted variable name against the query
// map. A flat key containing dots shadows the nested path it spells.
func queryValue(vars map[string]any, name string) (any, bool) {
	if v, ok := vars[name]; ok {
		return v, true
	}
	if !strings.Contains(name, ".") {
		return nil, false
	}

	var current any = vars
	for segment := range strings.SplitSeq(name, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
