package messageformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Func is a custom formatting function. It receives the resolved operand
// value, the option values and the formatter's locale, and returns the
// formatted text. A returned error aborts formatting and propagates to the
// caller unchanged.
type Func func(value any, options map[string]string, locale string) (string, error)

// Formatter renders parsed messages for one locale. It is immutable after
// construction and safe for concurrent use.
type Formatter struct {
	locale  string
	formats *Formats
	rule    PluralRule
	funcs   map[string]Func
}

// FormatterOption configures a Formatter during construction.
type FormatterOption func(*Formatter)

// NewFormatter creates a formatter with the given options.
// Defaults: locale "en", US English formats, CLDR plural rule for the locale.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		locale: "en",
		funcs:  make(map[string]Func),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.formats == nil {
		f.formats = NewFormats()
	}
	if f.rule == nil {
		f.rule = PluralRuleFor(f.locale)
	}
	return f
}

// WithLocale sets the formatter's locale (BCP 47 code). The locale selects
// the default CLDR plural rule and is passed to custom functions.
func WithLocale(locale string) FormatterOption {
	return func(f *Formatter) {
		if locale != "" {
			f.locale = locale
		}
	}
}

// WithFormats sets the locale formats backing the number and date functions.
func WithFormats(formats *Formats) FormatterOption {
	return func(f *Formatter) {
		if formats != nil {
			f.formats = formats
		}
	}
}

// WithPluralRule overrides the CLDR plural rule used for variant selection.
func WithPluralRule(rule PluralRule) FormatterOption {
	return func(f *Formatter) {
		if rule != nil {
			f.rule = rule
		}
	}
}

// WithFunc registers a custom formatting function. Built-in functions take
// precedence over custom ones with the same name.
func WithFunc(name string, fn Func) FormatterOption {
	return func(f *Formatter) {
		if name != "" && fn != nil {
			f.funcs[name] = fn
		}
	}
}

// Format renders a message to plain text. Markup placeholders contribute
// nothing to plain text output; fallback parts render brace-wrapped.
func (f *Formatter) Format(m *Message, vars map[string]any) (string, error) {
	parts, err := f.FormatToParts(m, vars)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, part := range parts {
		switch p := part.(type) {
		case TextPart:
			b.WriteString(p.Value)
		case NumberPart:
			b.WriteString(p.String())
		case DatetimePart:
			b.WriteString(p.String())
		case FallbackPart:
			b.WriteString(p.String())
		case MarkupPart:
			// invisible in plain text output
		}
	}
	return b.String(), nil
}

// FormatToParts renders a message into its ordered part sequence. Unresolved
// variables and unknown functions yield fallback parts; errors returned by
// custom functions and invalid option values propagate.
func (f *Formatter) FormatToParts(m *Message, vars map[string]any) ([]Part, error) {
	if m == nil {
		return nil, errors.New("nil message")
	}

	sc, err := f.buildScope(m, vars)
	if err != nil {
		return nil, err
	}

	pattern := m.pattern
	if len(m.selectors) > 0 {
		pattern = f.selectVariant(m, sc)
	}
	return f.formatPattern(pattern, sc)
}

// boundValue is one scope entry: a resolved value plus the annotation its
// declaration carries.
type boundValue struct {
	value    any
	fn       string
	options  []option
	fallback bool
	source   string
}

// scope resolves variable names against declarations first, then the
// caller-supplied variable map. Nested values are reachable with dotted
// paths when no flat key shadows them.
type scope struct {
	vars  map[string]any
	bound map[string]boundValue
}

func (sc *scope) resolve(name string) (boundValue, bool) {
	if bv, ok := sc.bound[name]; ok {
		return bv, true
	}
	if v, ok := lookupPath(sc.vars, name); ok {
		return boundValue{value: v}, true
	}
	return boundValue{}, false
}

func lookupPath(vars map[string]any, name string) (any, bool) {
	if vars == nil {
		return nil, false
	}
	if v, ok := vars[name]; ok {
		return v, true
	}
	if !strings.Contains(name, ".") {
		return nil, false
	}

	cur := any(vars)
	for seg := range strings.SplitSeq(name, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func (f *Formatter) buildScope(m *Message, vars map[string]any) (*scope, error) {
	sc := &scope{vars: vars, bound: make(map[string]boundValue, len(m.decls))}
	for _, d := range m.decls {
		bv := boundValue{fn: d.expr.fn, options: d.expr.options, source: d.expr.fallbackSource()}
		switch d.expr.operand.kind {
		case operandVar:
			ref, ok := sc.resolve(d.expr.operand.name)
			switch {
			case !ok:
				bv.fallback = true
			case ref.fallback:
				bv.fallback = true
				bv.source = ref.source
			default:
				bv.value = ref.value
			}
		case operandLiteral:
			if d.expr.operand.numeric {
				bv.value = d.expr.operand.num
			} else {
				bv.value = d.expr.operand.text
			}
		}
		sc.bound[d.name] = bv
	}
	return sc, nil
}

// selectorValue is the resolved state of one .match selector.
type selectorValue struct {
	defined bool
	numeric bool
	num     float64
	text    string
}

// selectVariant picks the first variant whose keys all match, in source
// order. The parser guarantees a catch-all variant, so selection always
// terminates with a pattern.
func (f *Formatter) selectVariant(m *Message, sc *scope) []patternItem {
	values := make([]selectorValue, len(m.selectors))
	for i, name := range m.selectors {
		bv, ok := sc.resolve(name)
		if !ok || bv.fallback {
			continue
		}
		sv := selectorValue{defined: true, text: stringify(bv.value)}
		if n, isNum := toFloat(bv.value); isNum {
			sv.numeric = true
			sv.num = n
		}
		values[i] = sv
	}

	for _, v := range m.variants {
		if f.variantMatches(v, values) {
			return v.pattern
		}
	}
	return nil
}

func (f *Formatter) variantMatches(v variant, values []selectorValue) bool {
	for i, key := range v.keys {
		val := values[i]
		switch {
		case key.catchAll:
			// matches anything, including undefined selectors
		case !val.defined:
			return false
		case key.numeric && val.numeric:
			if key.num != val.num {
				return false
			}
		case val.numeric:
			// keyword key against a numeric value selects by plural category
			if key.text != f.rule(val.num) {
				return false
			}
		default:
			if key.text != val.text {
				return false
			}
		}
	}
	return true
}

func (f *Formatter) formatPattern(pattern []patternItem, sc *scope) ([]Part, error) {
	parts := make([]Part, 0, len(pattern))
	for _, item := range pattern {
		switch it := item.(type) {
		case textItem:
			parts = append(parts, TextPart{Value: it.text})
		case markupItem:
			parts = append(parts, MarkupPart{
				Name:    it.name,
				Kind:    it.kind,
				Options: f.optionValues(it.options, sc),
			})
		case exprItem:
			part, err := f.formatExpression(it.expr, sc)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
	}
	return parts, nil
}

func (f *Formatter) formatExpression(expr expression, sc *scope) (Part, error) {
	var value any
	var bound boundValue
	var haveBound bool

	switch expr.operand.kind {
	case operandVar:
		bv, ok := sc.resolve(expr.operand.name)
		if !ok {
			return FallbackPart{Source: "$" + expr.operand.name}, nil
		}
		if bv.fallback {
			return FallbackPart{Source: bv.source}, nil
		}
		value = bv.value
		bound = bv
		haveBound = true
	case operandLiteral:
		if expr.operand.numeric {
			value = expr.operand.num
		} else {
			value = expr.operand.text
		}
	}

	fn := expr.fn
	opts := expr.options
	if fn == "" && haveBound && bound.fn != "" {
		fn = bound.fn
		opts = bound.options
	}
	if fn == "" {
		fn = defaultFunction(value)
	}
	return f.applyFunction(fn, value, opts, expr, sc)
}

func defaultFunction(value any) string {
	if _, ok := toFloat(value); ok {
		return "number"
	}
	if _, ok := value.(time.Time); ok {
		return "datetime"
	}
	return "string"
}

func (f *Formatter) applyFunction(fn string, value any, opts []option, expr expression, sc *scope) (Part, error) {
	switch fn {
	case "number", "integer":
		o := defaultNumberOptions()
		if fn == "integer" {
			o.maxFrac = 0
		}
		return f.numberPart(value, o, opts, expr, sc)
	case "currency":
		o := defaultNumberOptions()
		o.style = styleCurrency
		o.minFrac, o.maxFrac = 2, 2
		return f.numberPart(value, o, opts, expr, sc)
	case "percent":
		o := defaultNumberOptions()
		o.style = stylePercent
		o.maxFrac = 1
		return f.numberPart(value, o, opts, expr, sc)
	case "datetime", "date", "time":
		return f.datetimePart(fn, value, opts, expr, sc)
	case "string":
		return TextPart{Value: stringify(value)}, nil
	default:
		custom, ok := f.funcs[fn]
		if !ok {
			return FallbackPart{Source: expr.fallbackSource()}, nil
		}
		out, err := custom(value, f.optionValues(opts, sc), f.locale)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", fn, err)
		}
		return TextPart{Value: out}, nil
	}
}

func (f *Formatter) numberPart(value any, o numberOptions, opts []option, expr expression, sc *scope) (Part, error) {
	n, ok := toFloat(value)
	if !ok {
		return FallbackPart{Source: expr.fallbackSource()}, nil
	}

	for _, opt := range opts {
		raw := f.optionValue(opt.value, sc)
		switch opt.name {
		case "style":
			switch raw {
			case styleDecimal, stylePercent, styleCurrency:
				o.style = raw
			default:
				return nil, fmt.Errorf("invalid style option %q", raw)
			}
		case "useGrouping":
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid useGrouping option %q", raw)
			}
			o.grouping = b
		case "minimumFractionDigits":
			v, err := strconv.Atoi(raw)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("invalid minimumFractionDigits option %q", raw)
			}
			o.minFrac = v
		case "maximumFractionDigits":
			v, err := strconv.Atoi(raw)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("invalid maximumFractionDigits option %q", raw)
			}
			o.maxFrac = v
		}
	}
	if o.maxFrac >= 0 && o.maxFrac < o.minFrac {
		o.maxFrac = o.minFrac
	}

	return NumberPart{
		Source: expr.fallbackSource(),
		Value:  n,
		Pieces: f.formats.numberPieces(n, o),
	}, nil
}

func (f *Formatter) datetimePart(fn string, value any, opts []option, expr expression, sc *scope) (Part, error) {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return FallbackPart{Source: expr.fallbackSource()}, nil
		}
		t = parsed
	default:
		return FallbackPart{Source: expr.fallbackSource()}, nil
	}

	kind := fn
	if fn == "datetime" {
		var hasDate, hasTime bool
		for _, opt := range opts {
			switch opt.name {
			case "dateStyle":
				hasDate = true
			case "timeStyle":
				hasTime = true
			}
		}
		switch {
		case hasDate && !hasTime:
			kind = "date"
		case hasTime && !hasDate:
			kind = "time"
		}
	}

	return DatetimePart{
		Source: expr.fallbackSource(),
		Value:  t,
		Pieces: f.formats.datetimePieces(t, kind),
	}, nil
}

// optionValues resolves options to their string values. Variable references
// resolve through the scope; unresolved variables become empty strings.
func (f *Formatter) optionValues(opts []option, sc *scope) map[string]string {
	if len(opts) == 0 {
		return nil
	}
	out := make(map[string]string, len(opts))
	for _, opt := range opts {
		out[opt.name] = f.optionValue(opt.value, sc)
	}
	return out
}

func (f *Formatter) optionValue(v optionValue, sc *scope) string {
	if !v.variable {
		return v.text
	}
	bv, ok := sc.resolve(v.name)
	if !ok || bv.fallback {
		return ""
	}
	return stringify(bv.value)
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// stringify renders a value for text output. Sequences join their elements
// with a comma and space; nested maps fall back to fmt rendering.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = stringify(item)
		}
		return strings.Join(items, ", ")
	case []string:
		return strings.Join(v, ", ")
	default:
		if n, ok := toFloat(value); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		return fmt.Sprint(value)
	}
}
