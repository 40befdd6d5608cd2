package messageformat

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Formats contains locale-specific rendering rules for numbers, currency,
// percentages and dates. It backs the built-in :number, :currency, :percent,
// :date, :time and :datetime functions. Immutable after creation and safe
// for concurrent use.
type Formats struct {
	decimalSeparator  string
	thousandSeparator string
	currencySymbol    string
	currencyPosition  string // "before" or "after"
	percentSymbol     string
	dateFormat        string
	timeFormat        string
	dateTimeFormat    string
}

// FormatsOption configures Formats during construction.
type FormatsOption func(*Formats)

// NewFormats creates locale formats with the given options.
// If no options are provided, it defaults to US English formatting.
func NewFormats(opts ...FormatsOption) *Formats {
	f := &Formats{
		decimalSeparator:  ".",
		thousandSeparator: ",",
		currencySymbol:    "$",
		currencyPosition:  "before",
		percentSymbol:     "%",
		dateFormat:        "01/02/2006",
		timeFormat:        "3:04 PM",
		dateTimeFormat:    "01/02/2006 3:04 PM",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithDecimalSeparator sets the decimal separator character.
func WithDecimalSeparator(sep string) FormatsOption {
	return func(f *Formats) {
		f.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the thousand separator character.
func WithThousandSeparator(sep string) FormatsOption {
	return func(f *Formats) {
		f.thousandSeparator = sep
	}
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) FormatsOption {
	return func(f *Formats) {
		f.currencySymbol = symbol
	}
}

// WithCurrencyPosition sets the currency position ("before" or "after").
func WithCurrencyPosition(pos string) FormatsOption {
	return func(f *Formats) {
		if pos == "before" || pos == "after" {
			f.currencyPosition = pos
		}
	}
}

// WithPercentSymbol sets the percent symbol.
func WithPercentSymbol(symbol string) FormatsOption {
	return func(f *Formats) {
		f.percentSymbol = symbol
	}
}

// WithDateFormat sets the date layout in Go reference-time notation.
func WithDateFormat(layout string) FormatsOption {
	return func(f *Formats) {
		f.dateFormat = layout
	}
}

// WithTimeFormat sets the time layout in Go reference-time notation.
func WithTimeFormat(layout string) FormatsOption {
	return func(f *Formats) {
		f.timeFormat = layout
	}
}

// WithDateTimeFormat sets the datetime layout in Go reference-time notation.
func WithDateTimeFormat(layout string) FormatsOption {
	return func(f *Formats) {
		f.dateTimeFormat = layout
	}
}

// FormatNumber formats a number with the locale's separators.
// Fraction digits are capped at three and trailing zeros removed.
func (f *Formats) FormatNumber(n float64) string {
	return joinPieces(f.numberPieces(n, defaultNumberOptions()))
}

// FormatCurrency formats a currency amount with exactly two fraction digits
// and the locale's symbol placement.
func (f *Formats) FormatCurrency(amount float64) string {
	o := defaultNumberOptions()
	o.style = styleCurrency
	o.minFrac, o.maxFrac = 2, 2
	return joinPieces(f.numberPieces(amount, o))
}

// FormatPercent formats a ratio as a percentage (0.5 renders as "50%").
func (f *Formats) FormatPercent(n float64) string {
	o := defaultNumberOptions()
	o.style = stylePercent
	o.maxFrac = 1
	return joinPieces(f.numberPieces(n, o))
}

// FormatDate formats a date with the locale's date layout.
func (f *Formats) FormatDate(t time.Time) string {
	return t.Format(f.dateFormat)
}

// FormatTime formats a time with the locale's time layout.
func (f *Formats) FormatTime(t time.Time) string {
	return t.Format(f.timeFormat)
}

// FormatDateTime formats a datetime with the locale's datetime layout.
func (f *Formats) FormatDateTime(t time.Time) string {
	return t.Format(f.dateTimeFormat)
}

const (
	styleDecimal  = "decimal"
	stylePercent  = "percent"
	styleCurrency = "currency"
)

// numberOptions mirrors the option set of the :number function family.
type numberOptions struct {
	style    string
	grouping bool
	minFrac  int
	maxFrac  int // -1 means natural (shortest) representation
}

func defaultNumberOptions() numberOptions {
	return numberOptions{style: styleDecimal, grouping: true, minFrac: 0, maxFrac: 3}
}

// numberPieces renders a number into typed pieces according to the locale
// rules and the given options.
func (f *Formats) numberPieces(n float64, o numberOptions) []Piece {
	neg := n < 0
	abs := math.Abs(n)
	if o.style == stylePercent {
		abs *= 100
	}

	var rendered string
	if o.maxFrac >= 0 {
		rendered = strconv.FormatFloat(abs, 'f', o.maxFrac, 64)
	} else {
		rendered = strconv.FormatFloat(abs, 'f', -1, 64)
	}

	intDigits := rendered
	frac := ""
	if dot := strings.IndexByte(rendered, '.'); dot >= 0 {
		intDigits = rendered[:dot]
		frac = rendered[dot+1:]
	}
	frac = strings.TrimRight(frac, "0")
	for len(frac) < o.minFrac {
		frac += "0"
	}

	pieces := make([]Piece, 0, 8)
	if neg {
		pieces = append(pieces, Piece{Kind: "minusSign", Value: "-"})
	}
	if o.style == styleCurrency && f.currencyPosition == "before" {
		pieces = append(pieces, f.currencyPrefixPieces()...)
	}
	pieces = append(pieces, f.integerPieces(intDigits, o.grouping)...)
	if frac != "" {
		pieces = append(pieces,
			Piece{Kind: "decimal", Value: f.decimalSeparator},
			Piece{Kind: "fraction", Value: frac},
		)
	}
	if o.style == stylePercent {
		pieces = append(pieces, Piece{Kind: "percentSign", Value: f.percentSymbol})
	}
	if o.style == styleCurrency && f.currencyPosition == "after" {
		pieces = append(pieces,
			Piece{Kind: "literal", Value: " "},
			Piece{Kind: "currency", Value: f.currencySymbol},
		)
	}
	return pieces
}

// currencyPrefixPieces returns the symbol pieces for before-position
// currencies. Symbols that conventionally attach to the amount ($, ¥, £)
// get no separating space.
func (f *Formats) currencyPrefixPieces() []Piece {
	attached := f.currencySymbol == "$" ||
		strings.HasSuffix(f.currencySymbol, "$") ||
		f.currencySymbol == "¥" ||
		f.currencySymbol == "£"
	if attached {
		return []Piece{{Kind: "currency", Value: f.currencySymbol}}
	}
	return []Piece{
		{Kind: "currency", Value: f.currencySymbol},
		{Kind: "literal", Value: " "},
	}
}

// integerPieces splits integer digits into grouped pieces separated by the
// locale's thousand separator. Grouping starts above three digits.
func (f *Formats) integerPieces(digits string, grouping bool) []Piece {
	if !grouping || len(digits) <= 3 {
		return []Piece{{Kind: "integer", Value: digits}}
	}

	var pieces []Piece
	first := len(digits) % 3
	if first > 0 {
		pieces = append(pieces, Piece{Kind: "integer", Value: digits[:first]})
	}
	for i := first; i < len(digits); i += 3 {
		if len(pieces) > 0 {
			pieces = append(pieces, Piece{Kind: "group", Value: f.thousandSeparator})
		}
		pieces = append(pieces, Piece{Kind: "integer", Value: digits[i : i+3]})
	}
	return pieces
}

// datetimePieces renders a time value into a single datetime piece using the
// layout selected by kind ("date", "time" or "datetime").
func (f *Formats) datetimePieces(t time.Time, kind string) []Piece {
	var value string
	switch kind {
	case "date":
		value = f.FormatDate(t)
	case "time":
		value = f.FormatTime(t)
	default:
		value = f.FormatDateTime(t)
	}
	return []Piece{{Kind: "datetime", Value: value}}
}
