// Package messageformat parses and formats translation messages written in
// the Unicode MessageFormat 2 syntax.
//
// A message is either a simple pattern ("Hello, {$name}!") or a complex
// message built from declarations, a match statement and quoted patterns.
// Parsing and formatting are separate steps: Parse produces an immutable
// *Message that can be formatted repeatedly and concurrently, and Formatter
// renders it to plain text or to an ordered part sequence for rich output.
//
// # Basic Usage
//
// Parse a message once and format it with variables:
//
//	import "github.com/dmitrymomot/lingo/core/messageformat"
//
//	msg, err := messageformat.Parse("Hello, {$name}!")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	f := messageformat.NewFormatter(messageformat.WithLocale("en"))
//	out, _ := f.Format(msg, map[string]any{"name": "Ada"})
//	// Output: "Hello, Ada!"
//
// # Match Statements
//
// Complex messages select a pattern by matching declared selectors against
// variant keys. Numeric values match exact number keys first, then their
// CLDR plural category, and the required * variant catches everything else:
//
//	msg, _ := messageformat.Parse(`.input {$count :number}
//	.match $count
//	0     {{No new messages}}
//	one   {{One new message}}
//	*     {{{$count} new messages}}`)
//
//	out, _ := f.Format(msg, map[string]any{"count": 1})
//	// Output: "One new message"
//
// # Parts Output
//
// FormatToParts keeps text, placeholder and markup boundaries separate so
// callers can rebuild rich structure around formatted values:
//
//	msg, _ := messageformat.Parse("You have {#b}{$count :number}{/b} points")
//	parts, _ := f.FormatToParts(msg, map[string]any{"count": 1234})
//	// TextPart{"You have "}, MarkupPart{b, open},
//	// NumberPart{1234, pieces: 1 , 234}, MarkupPart{b, close},
//	// TextPart{" points"}
//
// Number and datetime parts carry sub-pieces (integer digits, group and
// decimal separators, currency symbols) so renderers can style individual
// fragments the way Intl.NumberFormat.formatToParts does.
//
// # Error Handling
//
// Parse reports malformed syntax with *SyntaxError carrying the byte offset
// of the failure; IsSyntaxError distinguishes it from other errors so
// callers can fall back to the raw source string. Formatting never fails on
// missing data: unresolved variables and unknown functions degrade to
// fallback parts that render brace-wrapped (for example "{$missing}").
// Errors returned by custom functions and invalid option values do
// propagate, as they indicate broken configuration rather than missing
// data.
//
// # Custom Functions
//
// Register custom formatting functions at construction:
//
//	f := messageformat.NewFormatter(
//		messageformat.WithLocale("de"),
//		messageformat.WithFunc("ordinal", func(v any, opts map[string]string, locale string) (string, error) {
//			return humanize.Ordinal(int(v.(float64))), nil
//		}),
//	)
package messageformat
