package markup

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/lingo/core/messageformat"
)

// Source supplies renderable components for markup tags. Map selects by tag
// name, List by numeric position. Lookups receive unaliased names, so a
// template tag "<0>" selects List index 0.
type Source interface {
	component(name string) (templ.Component, bool)
}

// Map supplies components keyed by tag name.
type Map map[string]templ.Component

func (m Map) component(name string) (templ.Component, bool) {
	c, ok := m[name]
	return c, ok && c != nil
}

// List supplies components by position for numeric tags.
type List []templ.Component

func (l List) component(name string) (templ.Component, bool) {
	idx, err := strconv.Atoi(name)
	if err != nil || idx < 0 || idx >= len(l) {
		return nil, false
	}
	c := l[idx]
	return c, c != nil
}

// Render maps a reconstructed tree onto caller-supplied components and
// returns a single renderable component. Spans whose tag has a component
// render that component with the mapped children reachable through templ's
// child mechanism; spans without one are erased, keeping their content.
// Components are never mutated, only rendered.
func Render(nodes []Node, components Source) templ.Component {
	if len(nodes) == 0 {
		return templ.NopComponent
	}
	return templ.Join(renderNodes(nodes, components)...)
}

func renderNodes(nodes []Node, components Source) []templ.Component {
	out := make([]templ.Component, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, renderNode(node, components))
	}
	return out
}

func renderNode(node Node, components Source) templ.Component {
	switch n := node.(type) {
	case Span:
		children := templ.Join(renderNodes(n.Children, components)...)
		c, ok := lookup(components, n.Name)
		if !ok {
			return children
		}
		return withChildren(c, children)
	case Leaf:
		return renderLeaf(n.Part, components)
	default:
		panic(fmt.Sprintf("markup: unknown tree node %T", node))
	}
}

func renderLeaf(part messageformat.Part, components Source) templ.Component {
	switch p := part.(type) {
	case messageformat.TextPart:
		return Text(p.Value)
	case messageformat.NumberPart:
		return Text(p.String())
	case messageformat.DatetimePart:
		return Text(p.String())
	case messageformat.FallbackPart:
		return Text(p.String())
	case messageformat.MarkupPart:
		if p.Kind != messageformat.MarkupStandalone {
			panic(fmt.Sprintf("markup: %s tag %q reached rendering as a leaf", p.Kind, p.Name))
		}
		c, ok := lookup(components, p.Name)
		if !ok {
			return templ.NopComponent
		}
		return c
	default:
		// The part union is sealed; anything else means the formatting
		// engine broke its output contract.
		panic(fmt.Sprintf("markup: unknown part type %T", part))
	}
}

func lookup(components Source, name string) (templ.Component, bool) {
	if components == nil {
		return nil, false
	}
	return components.component(UnaliasTag(name))
}

// Text returns a component that renders the string HTML-escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Fail returns a component whose Render reports err without writing any
// output.
func Fail(err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return err
	})
}

func withChildren(c templ.Component, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.Render(templ.WithChildren(ctx, children), w)
	})
}
