package messageformat

import (
	"strings"
	"time"
)

// Part is one atomic unit of a formatted message, produced in the exact
// left-to-right order the content appears in the rendered template.
// It is a sealed union: TextPart, MarkupPart, NumberPart, DatetimePart
// and FallbackPart are the only implementations.
type Part interface {
	part()
}

// TextPart carries literal text.
type TextPart struct {
	Value string
}

// MarkupKind distinguishes the three markup placeholder forms.
type MarkupKind int

const (
	MarkupOpen MarkupKind = iota
	MarkupClose
	MarkupStandalone
)

// String returns the kind name for diagnostics.
func (k MarkupKind) String() string {
	switch k {
	case MarkupOpen:
		return "open"
	case MarkupClose:
		return "close"
	case MarkupStandalone:
		return "standalone"
	default:
		return "unknown"
	}
}

// MarkupPart carries a markup boundary: {#name}, {/name} or {#name/}.
type MarkupPart struct {
	Name    string
	Kind    MarkupKind
	Options map[string]string
}

// Piece is one segment of a formatted number or datetime value.
// Kinds used by the built-in functions: "integer", "group", "decimal",
// "fraction", "minusSign", "currency", "percentSign", "literal", "datetime".
type Piece struct {
	Kind  string
	Value string
}

// NumberPart carries a formatted numeric value together with the pieces it
// was rendered from.
type NumberPart struct {
	Source string
	Value  float64
	Pieces []Piece
}

// String concatenates the formatted pieces.
func (p NumberPart) String() string {
	return joinPieces(p.Pieces)
}

// DatetimePart carries a formatted time value together with its pieces.
type DatetimePart struct {
	Source string
	Value  time.Time
	Pieces []Piece
}

// String concatenates the formatted pieces.
func (p DatetimePart) String() string {
	return joinPieces(p.Pieces)
}

// FallbackPart is produced when a sub-expression cannot be resolved
// (unknown variable or unknown function). Source is the expression source
// without the surrounding braces.
type FallbackPart struct {
	Source string
}

// String returns the brace-wrapped representation of the original source.
func (p FallbackPart) String() string {
	return "{" + p.Source + "}"
}

func (TextPart) part()     {}
func (MarkupPart) part()   {}
func (NumberPart) part()   {}
func (DatetimePart) part() {}
func (FallbackPart) part() {}

func joinPieces(pieces []Piece) string {
	var b strings.Builder
	for _, piece := range pieces {
		b.WriteString(piece.Value)
	}
	return b.String()
}
