package i18n

import (
	"strconv"

	"github.com/dmitrymomot/lingo/core/messageformat"
)

// pluralSuffix separates a base key from its count, category and context
// qualifiers in flat dictionary keys ("item_5", "item_other", "friend_male").
const pluralSuffix = "_"

// countSuffix renders a count the way dictionary keys spell it: integral
// counts without a fraction ("1", "20"), fractional counts in their
// shortest decimal form ("1.5").
func countSuffix(count float64) string {
	return strconv.FormatFloat(count, 'f', -1, 64)
}

// pluralCandidates lists the keys tried for a counted lookup, most specific
// first: exact-count flat form, category flat form, exact-count nested form,
// category nested form, then the base key itself. Exact-count overrides
// always outrank category forms, and flat forms outrank nested ones.
func pluralCandidates(base string, count float64, sep string, rule messageformat.PluralRule) []string {
	exact := countSuffix(count)
	category := messageformat.PluralOther
	if rule != nil {
		category = rule(count)
	}

	candidates := make([]string, 0, 5)
	candidates = append(candidates,
		base+pluralSuffix+exact,
		base+pluralSuffix+category,
	)
	if sep != "" {
		candidates = append(candidates,
			base+sep+exact,
			base+sep+category,
		)
	}
	return append(candidates, base)
}

// candidateKeys builds the full ordered candidate list for one lookup,
// expanding context and count variants. Context-qualified forms are tried
// before bare forms; within each group the plural priority order applies.
// A nil count skips plural expansion entirely.
func candidateKeys(base, context string, count *float64, sep string, rule messageformat.PluralRule) []string {
	bases := []string{base}
	if context != "" {
		bases = []string{base + pluralSuffix + context, base}
	}
	if count == nil {
		return bases
	}

	out := make([]string, 0, len(bases)*5)
	for _, b := range bases {
		out = append(out, pluralCandidates(b, *count, sep, rule)...)
	}
	return out
}
