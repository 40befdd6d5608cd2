package messageformat

import (
	"strconv"
	"strings"
)

// Message is a parsed message template. It is immutable after Parse and safe
// to format concurrently.
type Message struct {
	src       string
	decls     []declaration
	selectors []string
	variants  []variant
	pattern   []patternItem
}

// Source returns the original template text.
func (m *Message) Source() string {
	return m.src
}

// Parse parses a message template. Malformed input returns a *SyntaxError;
// callers that treat templates as best-effort should check IsSyntaxError and
// fall back to the raw text.
func Parse(src string) (*Message, error) {
	p := &parser{src: src}
	return p.parseMessage()
}

// MustParse is like Parse but panics on malformed input.
// Intended for static templates.
func MustParse(src string) *Message {
	m, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return m
}

// declaration binds a variable name to an expression (.input re-annotates an
// external variable, .local introduces a new one).
type declaration struct {
	input bool
	name  string
	expr  expression
}

// variant is one arm of a .match statement.
type variant struct {
	keys    []variantKey
	pattern []patternItem
}

type variantKey struct {
	catchAll bool
	text     string
	numeric  bool
	num      float64
}

// patternItem is a sealed union over literal text, expression placeholders
// and markup placeholders.
type patternItem interface {
	item()
}

type textItem struct {
	text string
}

type exprItem struct {
	expr expression
}

type markupItem struct {
	name    string
	kind    MarkupKind
	options []option
}

func (textItem) item()   {}
func (exprItem) item()   {}
func (markupItem) item() {}

type operandKind int

const (
	operandNone operandKind = iota
	operandVar
	operandLiteral
)

type operand struct {
	kind    operandKind
	name    string
	text    string
	numeric bool
	num     float64
}

type expression struct {
	operand operand
	fn      string
	options []option
}

// fallbackSource returns the brace-less source representation used for
// fallback parts, mirroring how the expression was written.
func (e expression) fallbackSource() string {
	switch e.operand.kind {
	case operandVar:
		return "$" + e.operand.name
	case operandLiteral:
		return "|" + e.operand.text + "|"
	default:
		return ":" + e.fn
	}
}

type option struct {
	name  string
	value optionValue
}

type optionValue struct {
	variable bool
	name     string
	text     string
}

// parser scans the source with an explicit index. All state lives here;
// nothing is shared between parse calls.
type parser struct {
	src string
	pos int
}

func (p *parser) parseMessage() (*Message, error) {
	m := &Message{src: p.src}

	start := p.pos
	p.skipWhitespace()
	switch {
	case p.hasPrefix("."):
		if err := p.parseComplexBody(m); err != nil {
			return nil, err
		}
	case p.hasPrefix("{{"):
		pattern, err := p.parseQuotedPattern()
		if err != nil {
			return nil, err
		}
		m.pattern = pattern
		if err := p.expectEnd(); err != nil {
			return nil, err
		}
	default:
		// Leading whitespace is literal text in a simple message.
		p.pos = start
		pattern, err := p.parsePattern(false)
		if err != nil {
			return nil, err
		}
		m.pattern = pattern
	}
	return m, nil
}

// parseComplexBody consumes declarations followed by either a .match
// statement or a quoted pattern body.
func (p *parser) parseComplexBody(m *Message) error {
	for {
		p.skipWhitespace()
		switch {
		case p.hasPrefix(".input"):
			p.pos += len(".input")
			p.skipWhitespace()
			expr, err := p.parseExpressionPlaceholder()
			if err != nil {
				return err
			}
			if expr.operand.kind != operandVar {
				return syntaxErr(p.pos, "input declaration requires a variable operand")
			}
			m.decls = append(m.decls, declaration{input: true, name: expr.operand.name, expr: expr})

		case p.hasPrefix(".local"):
			p.pos += len(".local")
			p.skipWhitespace()
			if !p.hasPrefix("$") {
				return syntaxErr(p.pos, "local declaration requires a $variable")
			}
			p.pos++
			name, err := p.parseName()
			if err != nil {
				return err
			}
			p.skipWhitespace()
			if !p.hasPrefix("=") {
				return syntaxErr(p.pos, "expected = in local declaration")
			}
			p.pos++
			p.skipWhitespace()
			expr, err := p.parseExpressionPlaceholder()
			if err != nil {
				return err
			}
			m.decls = append(m.decls, declaration{name: name, expr: expr})

		case p.hasPrefix(".match"):
			p.pos += len(".match")
			return p.parseMatch(m)

		case p.hasPrefix("{{"):
			pattern, err := p.parseQuotedPattern()
			if err != nil {
				return err
			}
			m.pattern = pattern
			return p.expectEnd()

		case p.eof():
			return syntaxErr(p.pos, "message body is missing")

		default:
			return syntaxErr(p.pos, "expected declaration or message body")
		}
	}
}

func (p *parser) parseMatch(m *Message) error {
	for {
		p.skipWhitespace()
		if !p.hasPrefix("$") {
			break
		}
		p.pos++
		name, err := p.parseName()
		if err != nil {
			return err
		}
		m.selectors = append(m.selectors, name)
	}
	if len(m.selectors) == 0 {
		return syntaxErr(p.pos, "match statement requires at least one $selector")
	}

	hasCatchAll := false
	for {
		p.skipWhitespace()
		if p.eof() {
			break
		}

		var keys []variantKey
		for {
			p.skipWhitespace()
			if p.hasPrefix("{{") {
				break
			}
			if p.eof() {
				return syntaxErr(p.pos, "variant is missing its pattern")
			}
			key, err := p.parseVariantKey()
			if err != nil {
				return err
			}
			keys = append(keys, key)
		}
		if len(keys) == 0 {
			return syntaxErr(p.pos, "variant requires at least one key")
		}
		if len(keys) != len(m.selectors) {
			return syntaxErr(p.pos, "variant has %d keys for %d selectors", len(keys), len(m.selectors))
		}

		pattern, err := p.parseQuotedPattern()
		if err != nil {
			return err
		}

		all := true
		for _, k := range keys {
			if !k.catchAll {
				all = false
				break
			}
		}
		if all {
			hasCatchAll = true
		}
		m.variants = append(m.variants, variant{keys: keys, pattern: pattern})
	}

	if len(m.variants) == 0 {
		return syntaxErr(p.pos, "match statement requires at least one variant")
	}
	if !hasCatchAll {
		return syntaxErr(p.pos, "match statement is missing a catch-all * variant")
	}
	return nil
}

func (p *parser) parseVariantKey() (variantKey, error) {
	if p.hasPrefix("*") {
		p.pos++
		return variantKey{catchAll: true}, nil
	}
	if p.hasPrefix("|") {
		text, err := p.parseQuotedLiteral()
		if err != nil {
			return variantKey{}, err
		}
		key := variantKey{text: text}
		if n, err := strconv.ParseFloat(text, 64); err == nil {
			key.numeric = true
			key.num = n
		}
		return key, nil
	}

	start := p.pos
	for !p.eof() && isUnquotedChar(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return variantKey{}, syntaxErr(p.pos, "expected variant key")
	}
	text := p.src[start:p.pos]
	key := variantKey{text: text}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		key.numeric = true
		key.num = n
	}
	return key, nil
}

func (p *parser) parseQuotedPattern() ([]patternItem, error) {
	if !p.hasPrefix("{{") {
		return nil, syntaxErr(p.pos, "expected {{ to start a pattern")
	}
	p.pos += 2
	pattern, err := p.parsePattern(true)
	if err != nil {
		return nil, err
	}
	p.pos += 2 // closing }} verified by parsePattern
	return pattern, nil
}

// parsePattern scans pattern content. In quoted mode it stops before the
// closing }}; in simple mode it runs to the end of input.
func (p *parser) parsePattern(quoted bool) ([]patternItem, error) {
	var items []patternItem
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			items = append(items, textItem{text: text.String()})
			text.Reset()
		}
	}

	for {
		if quoted && p.hasPrefix("}}") {
			flush()
			return items, nil
		}
		if p.eof() {
			if quoted {
				return nil, syntaxErr(p.pos, "unterminated pattern, expected }}")
			}
			flush()
			return items, nil
		}

		switch c := p.src[p.pos]; c {
		case '\\':
			if p.pos+1 >= len(p.src) {
				return nil, syntaxErr(p.pos, "trailing backslash")
			}
			esc := p.src[p.pos+1]
			switch esc {
			case '{', '}', '|', '\\':
				text.WriteByte(esc)
				p.pos += 2
			default:
				return nil, syntaxErr(p.pos, "invalid escape sequence \\%c", esc)
			}
		case '{':
			flush()
			item, err := p.parsePlaceholder()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		case '}':
			if quoted {
				return nil, syntaxErr(p.pos, "unterminated pattern, expected }}")
			}
			return nil, syntaxErr(p.pos, "unexpected } in pattern")
		default:
			text.WriteByte(c)
			p.pos++
		}
	}
}

func (p *parser) parsePlaceholder() (patternItem, error) {
	open := p.pos
	p.pos++ // consume {
	p.skipWhitespace()
	if p.eof() {
		return nil, syntaxErr(open, "unterminated placeholder")
	}

	if c := p.src[p.pos]; c == '#' || c == '/' {
		return p.parseMarkup(open)
	}

	expr, err := p.parseExpression(open)
	if err != nil {
		return nil, err
	}
	return exprItem{expr: expr}, nil
}

func (p *parser) parseMarkup(open int) (patternItem, error) {
	marker := p.src[p.pos]
	p.pos++
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	item := markupItem{name: name, kind: MarkupOpen}
	if marker == '/' {
		item.kind = MarkupClose
		p.skipWhitespace()
	} else {
		opts, err := p.parseOptions()
		if err != nil {
			return nil, err
		}
		item.options = opts
		p.skipWhitespace()
		if p.hasPrefix("/") {
			p.pos++
			item.kind = MarkupStandalone
			p.skipWhitespace()
		}
	}

	if !p.hasPrefix("}") {
		return nil, syntaxErr(open, "unterminated markup placeholder")
	}
	p.pos++
	return item, nil
}

// parseExpressionPlaceholder parses a full {expression} with the braces.
// Markup is not allowed here; it is used by declarations.
func (p *parser) parseExpressionPlaceholder() (expression, error) {
	if !p.hasPrefix("{") {
		return expression{}, syntaxErr(p.pos, "expected { to start an expression")
	}
	open := p.pos
	p.pos++
	p.skipWhitespace()
	if p.eof() {
		return expression{}, syntaxErr(open, "unterminated placeholder")
	}
	if c := p.src[p.pos]; c == '#' || c == '/' {
		return expression{}, syntaxErr(p.pos, "markup is not allowed in declarations")
	}
	return p.parseExpression(open)
}

// parseExpression parses the inside of an expression placeholder and the
// closing brace. open is the offset of the opening brace, used in errors.
func (p *parser) parseExpression(open int) (expression, error) {
	var expr expression

	switch c := p.src[p.pos]; {
	case c == '$':
		p.pos++
		name, err := p.parseName()
		if err != nil {
			return expr, err
		}
		expr.operand = operand{kind: operandVar, name: name}
	case c == '|':
		text, err := p.parseQuotedLiteral()
		if err != nil {
			return expr, err
		}
		expr.operand = literalOperand(text)
	case c == ':':
		expr.operand = operand{kind: operandNone}
	default:
		start := p.pos
		for !p.eof() && isUnquotedChar(p.src[p.pos]) {
			p.pos++
		}
		if p.pos == start {
			if c == '}' {
				return expr, syntaxErr(open, "empty placeholder")
			}
			return expr, syntaxErr(p.pos, "expected expression operand")
		}
		expr.operand = literalOperand(p.src[start:p.pos])
	}

	p.skipWhitespace()
	if p.hasPrefix(":") {
		p.pos++
		fn, err := p.parseName()
		if err != nil {
			return expr, err
		}
		expr.fn = fn
		opts, err := p.parseOptions()
		if err != nil {
			return expr, err
		}
		expr.options = opts
		p.skipWhitespace()
	}

	if !p.hasPrefix("}") {
		return expr, syntaxErr(open, "unterminated placeholder")
	}
	p.pos++
	return expr, nil
}

func (p *parser) parseOptions() ([]option, error) {
	var opts []option
	for {
		save := p.pos
		p.skipWhitespace()
		if p.eof() || !isNameStart(p.src[p.pos]) {
			p.pos = save
			return opts, nil
		}

		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if !p.hasPrefix("=") {
			return nil, syntaxErr(p.pos, "expected = after option name %q", name)
		}
		p.pos++
		p.skipWhitespace()

		value, err := p.parseOptionValue()
		if err != nil {
			return nil, err
		}
		opts = append(opts, option{name: name, value: value})
	}
}

func (p *parser) parseOptionValue() (optionValue, error) {
	if p.eof() {
		return optionValue{}, syntaxErr(p.pos, "expected option value")
	}
	switch c := p.src[p.pos]; {
	case c == '$':
		p.pos++
		name, err := p.parseName()
		if err != nil {
			return optionValue{}, err
		}
		return optionValue{variable: true, name: name}, nil
	case c == '|':
		text, err := p.parseQuotedLiteral()
		if err != nil {
			return optionValue{}, err
		}
		return optionValue{text: text}, nil
	default:
		start := p.pos
		for !p.eof() && isUnquotedChar(p.src[p.pos]) {
			p.pos++
		}
		if p.pos == start {
			return optionValue{}, syntaxErr(p.pos, "expected option value")
		}
		return optionValue{text: p.src[start:p.pos]}, nil
	}
}

// parseName scans a name token. Names never start with a digit; this is the
// grammar rule that forces numeric markup tags to be aliased by callers.
func (p *parser) parseName() (string, error) {
	if p.eof() || !isNameStart(p.src[p.pos]) {
		return "", syntaxErr(p.pos, "expected name")
	}
	start := p.pos
	p.pos++
	for !p.eof() && isNameChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *parser) parseQuotedLiteral() (string, error) {
	open := p.pos
	p.pos++ // consume |
	var text strings.Builder
	for {
		if p.eof() {
			return "", syntaxErr(open, "unterminated quoted literal")
		}
		switch c := p.src[p.pos]; c {
		case '|':
			p.pos++
			return text.String(), nil
		case '\\':
			if p.pos+1 >= len(p.src) {
				return "", syntaxErr(p.pos, "trailing backslash")
			}
			esc := p.src[p.pos+1]
			switch esc {
			case '{', '}', '|', '\\':
				text.WriteByte(esc)
				p.pos += 2
			default:
				return "", syntaxErr(p.pos, "invalid escape sequence \\%c", esc)
			}
		default:
			text.WriteByte(c)
			p.pos++
		}
	}
}

func (p *parser) expectEnd() error {
	p.skipWhitespace()
	if !p.eof() {
		return syntaxErr(p.pos, "unexpected content after pattern")
	}
	return nil
}

func (p *parser) skipWhitespace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.src[p.pos:], s)
}

func literalOperand(text string) operand {
	op := operand{kind: operandLiteral, text: text}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		op.numeric = true
		op.num = n
	}
	return op
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-' || c == '.'
}

func isUnquotedChar(c byte) bool {
	return isNameChar(c) || c == '+'
}
