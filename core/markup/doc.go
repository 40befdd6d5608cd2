// Package markup turns the flat part sequence produced by the message
// formatting engine into a nested tag tree and maps that tree onto
// caller-supplied templ components.
//
// Templates written with HTML-style tags ("Click <b>here</b>", "<0>ok</0>")
// are first rewritten into message-grammar markup placeholders with
// RewriteTags. After formatting, Reconstruct pairs the open and close parts
// back into spans, and Render substitutes each span's tag with a component.
//
// # Basic Usage
//
//	import (
//		"github.com/dmitrymomot/lingo/core/markup"
//		"github.com/dmitrymomot/lingo/core/messageformat"
//	)
//
//	src := markup.RewriteTags("Click <b>here</b> now")
//	// "Click {#b}here{/b} now"
//
//	msg := messageformat.MustParse(src)
//	parts, _ := messageformat.NewFormatter().FormatToParts(msg, nil)
//
//	tree := markup.Reconstruct(parts)
//	component := markup.Render(tree, markup.Map{"b": Bold()})
//	// component renders "Click <b>here</b> now" with Bold wrapping "here"
//
// # Positional Components
//
// Numeric tags select components by position, the way component lists are
// commonly passed from UI code:
//
//	component := markup.Render(tree, markup.List{Bold(), Link("/home")})
//	// <0> renders through Bold, <1> through Link
//
// Tags without a matching component are erased while their content is kept,
// so missing components degrade gracefully instead of failing a render.
//
// # Anomaly Handling
//
// Reconstruct never fails. Close tags without an open are logged and
// skipped, open tags without a close are logged and closed at end of input.
// Pass WithLogger to route those warnings to a specific logger.
package markup
