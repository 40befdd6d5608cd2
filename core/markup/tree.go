package markup

import (
	"log/slog"

	"github.com/dmitrymomot/lingo/core/messageformat"
)

// Node is one node of a reconstructed markup tree. It is a sealed union:
// Span wraps the content between a matched open/close tag pair, Leaf carries
// a single non-markup part.
type Node interface {
	node()
}

// Span is a matched markup tag pair and the content between the two tags.
// Name is the tag name exactly as the engine produced it, so numeric tags
// still carry their alias here.
type Span struct {
	Name     string
	Options  map[string]string
	Children []Node
}

// Leaf wraps a single content part: text, number, datetime, fallback or
// standalone markup.
type Leaf struct {
	Part messageformat.Part
}

func (Span) node() {}
func (Leaf) node() {}

// Option configures tree reconstruction.
type Option func(*config)

type config struct {
	log *slog.Logger
}

// WithLogger sets the logger used for markup anomaly warnings.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// Reconstruct builds a nested tree from the flat part sequence the
// formatting engine produces. Each matched open/close pair becomes one Span
// whose children are the parts between the two tags; nesting depth follows
// the source template. Anomalies never fail: a close tag without an open is
// logged and skipped, an open tag that is never closed is logged and closed
// at end of input with the children gathered so far.
func Reconstruct(parts []messageformat.Part, opts ...Option) []Node {
	cfg := config{log: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	root := &frame{}
	stack := []*frame{root}

	for _, part := range parts {
		mp, ok := part.(messageformat.MarkupPart)
		if !ok || mp.Kind == messageformat.MarkupStandalone {
			top := stack[len(stack)-1]
			top.children = append(top.children, Leaf{Part: part})
			continue
		}

		switch mp.Kind {
		case messageformat.MarkupOpen:
			stack = append(stack, &frame{name: mp.Name, options: mp.Options})

		case messageformat.MarkupClose:
			if len(stack) == 1 {
				cfg.log.Warn("markup close tag without a matching open",
					slog.String("tag", mp.Name))
				continue
			}
			top := stack[len(stack)-1]
			if top.name != mp.Name {
				// Overlapping tags; the close still ends the innermost span.
				cfg.log.Warn("markup close tag does not match the open span",
					slog.String("tag", mp.Name),
					slog.String("open", top.name))
			}
			stack = stack[:len(stack)-1]
			closeSpan(stack, top)
		}
	}

	for len(stack) > 1 {
		top := stack[len(stack)-1]
		cfg.log.Warn("markup open tag was never closed",
			slog.String("tag", top.name))
		stack = stack[:len(stack)-1]
		closeSpan(stack, top)
	}
	return root.children
}

type frame struct {
	name     string
	options  map[string]string
	children []Node
}

func closeSpan(stack []*frame, top *frame) {
	parent := stack[len(stack)-1]
	parent.children = append(parent.children, Span{
		Name:     top.name,
		Options:  top.options,
		Children: top.children,
	})
}
