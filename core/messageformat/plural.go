package messageformat

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralRule determines which plural category to use for a given count.
// Categories follow Unicode CLDR (Common Locale Data Repository) guidelines.
type PluralRule func(count float64) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"  // Used for 0 in some languages
	PluralOne   = "one"   // Singular form
	PluralTwo   = "two"   // Dual form (used in Arabic, Hebrew, etc.)
	PluralFew   = "few"   // Paucal form (used in Slavic languages, etc.)
	PluralMany  = "many"  // Used for larger quantities in some languages
	PluralOther = "other" // Default/catch-all form
)

// PluralRuleFor returns the CLDR cardinal rule for the given language code
// (BCP 47, e.g. "en", "pl", "pt-BR"). Unknown codes resolve through the
// x/text matcher and ultimately behave like the root locale, which returns
// "other" for every count.
func PluralRuleFor(lang string) PluralRule {
	tag := language.Make(lang)
	return func(count float64) string {
		i, v, w, f, t := pluralOperands(count)
		return categoryName(plural.Cardinal.MatchPlural(tag, i, v, w, f, t))
	}
}

// pluralOperands derives the CLDR operands from a runtime number using its
// shortest decimal representation. Trailing-zero distinctions ("1" vs "1.0")
// are not observable on float64 values, so v==w and f==t.
func pluralOperands(n float64) (i, v, w, f, t int) {
	abs := math.Abs(n)
	s := strconv.FormatFloat(abs, 'f', -1, 64)

	intPart := s
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		frac := s[dot+1:]
		v = len(frac)
		w = v
		if fv, err := strconv.Atoi(frac); err == nil {
			f = fv
			t = fv
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || iv > math.MaxInt32 {
		// Counts beyond int range all land in the same CLDR bucket.
		iv = math.MaxInt32
	}
	return int(iv), v, w, f, t
}

func categoryName(form plural.Form) string {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// SupportedPluralForms returns which plural categories a rule actually uses.
// This is useful for validating that a dictionary covers every form a
// language needs.
func SupportedPluralForms(rule PluralRule) []string {
	forms := make(map[string]bool)

	// Numbers that typically trigger different plural categories.
	testCounts := []float64{0, 0.5, 1, 1.5, 2, 3, 4, 5, 10, 11, 12, 13, 14, 20, 21, 22, 100, 101, 1000, 1000000}
	for _, n := range testCounts {
		forms[rule(n)] = true
	}

	// Fixed order for deterministic output.
	order := []string{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther}
	var result []string
	for _, form := range order {
		if forms[form] {
			result = append(result, form)
		}
	}
	return result
}
