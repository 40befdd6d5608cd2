package markup_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/markup"
	"github.com/dmitrymomot/lingo/core/messageformat"
)

func open(name string) messageformat.Part {
	return messageformat.MarkupPart{Name: name, Kind: messageformat.MarkupOpen}
}

func closeTag(name string) messageformat.Part {
	return messageformat.MarkupPart{Name: name, Kind: messageformat.MarkupClose}
}

func standalone(name string) messageformat.Part {
	return messageformat.MarkupPart{Name: name, Kind: messageformat.MarkupStandalone}
}

func textOf(s string) messageformat.Part {
	return messageformat.TextPart{Value: s}
}

func countSpans(nodes []markup.Node) int {
	n := 0
	for _, node := range nodes {
		if span, ok := node.(markup.Span); ok {
			n += 1 + countSpans(span.Children)
		}
	}
	return n
}

func TestReconstruct(t *testing.T) {
	t.Parallel()

	t.Run("no markup yields leaves in order", func(t *testing.T) {
		t.Parallel()

		parts := []messageformat.Part{textOf("a"), textOf("b")}
		tree := markup.Reconstruct(parts)

		require.Len(t, tree, 2)
		assert.Equal(t, markup.Leaf{Part: textOf("a")}, tree[0])
		assert.Equal(t, markup.Leaf{Part: textOf("b")}, tree[1])
	})

	t.Run("single span wraps inner parts", func(t *testing.T) {
		t.Parallel()

		parts := []messageformat.Part{
			textOf("Click "),
			open("b"),
			textOf("here"),
			closeTag("b"),
			textOf(" now"),
		}
		tree := markup.Reconstruct(parts)

		require.Len(t, tree, 3)
		assert.Equal(t, markup.Leaf{Part: textOf("Click ")}, tree[0])
		assert.Equal(t, markup.Span{
			Name:     "b",
			Children: []markup.Node{markup.Leaf{Part: textOf("here")}},
		}, tree[1])
		assert.Equal(t, markup.Leaf{Part: textOf(" now")}, tree[2])
	})

	t.Run("nested spans keep their depth", func(t *testing.T) {
		t.Parallel()

		parts := []messageformat.Part{
			open("a"),
			open("b"),
			textOf("x"),
			closeTag("b"),
			closeTag("a"),
		}
		tree := markup.Reconstruct(parts)

		require.Len(t, tree, 1)
		outer, ok := tree[0].(markup.Span)
		require.True(t, ok)
		assert.Equal(t, "a", outer.Name)

		require.Len(t, outer.Children, 1)
		inner, ok := outer.Children[0].(markup.Span)
		require.True(t, ok)
		assert.Equal(t, "b", inner.Name)
		assert.Equal(t, []markup.Node{markup.Leaf{Part: textOf("x")}}, inner.Children)
	})

	t.Run("sibling spans stay flat", func(t *testing.T) {
		t.Parallel()

		parts := []messageformat.Part{
			open("a"), closeTag("a"),
			open("b"), closeTag("b"),
		}
		tree := markup.Reconstruct(parts)

		require.Len(t, tree, 2)
		assert.Equal(t, markup.Span{Name: "a"}, tree[0])
		assert.Equal(t, markup.Span{Name: "b"}, tree[1])
	})

	t.Run("standalone markup stays a leaf", func(t *testing.T) {
		t.Parallel()

		tree := markup.Reconstruct([]messageformat.Part{
			textOf("line"),
			standalone("br"),
			textOf("break"),
		})

		require.Len(t, tree, 3)
		assert.Equal(t, markup.Leaf{Part: standalone("br")}, tree[1])
	})

	t.Run("span keeps markup options", func(t *testing.T) {
		t.Parallel()

		parts := []messageformat.Part{
			messageformat.MarkupPart{
				Name:    "link",
				Kind:    messageformat.MarkupOpen,
				Options: map[string]string{"href": "/home"},
			},
			textOf("home"),
			closeTag("link"),
		}
		tree := markup.Reconstruct(parts)

		require.Len(t, tree, 1)
		span, ok := tree[0].(markup.Span)
		require.True(t, ok)
		assert.Equal(t, map[string]string{"href": "/home"}, span.Options)
	})

	t.Run("matched pairs produce exactly that many spans", func(t *testing.T) {
		t.Parallel()

		parts := []messageformat.Part{
			open("a"), textOf("1"), closeTag("a"),
			open("b"), open("c"), textOf("2"), closeTag("c"), closeTag("b"),
			standalone("br"),
		}
		tree := markup.Reconstruct(parts)
		assert.Equal(t, 3, countSpans(tree))
	})
}

func TestReconstruct_Anomalies(t *testing.T) {
	t.Parallel()

	t.Run("stray close is logged and skipped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		tree := markup.Reconstruct([]messageformat.Part{
			textOf("a"),
			closeTag("b"),
			textOf("c"),
		}, markup.WithLogger(log))

		require.Len(t, tree, 2)
		assert.Equal(t, markup.Leaf{Part: textOf("a")}, tree[0])
		assert.Equal(t, markup.Leaf{Part: textOf("c")}, tree[1])
		assert.Contains(t, buf.String(), "close tag without a matching open")
		assert.Contains(t, buf.String(), "tag=b")
	})

	t.Run("unclosed open is force-closed at end of input", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		tree := markup.Reconstruct([]messageformat.Part{
			open("b"),
			textOf("partial"),
		}, markup.WithLogger(log))

		require.Len(t, tree, 1)
		assert.Equal(t, markup.Span{
			Name:     "b",
			Children: []markup.Node{markup.Leaf{Part: textOf("partial")}},
		}, tree[0])
		assert.Contains(t, buf.String(), "never closed")
	})

	t.Run("mismatched close ends the innermost span", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		tree := markup.Reconstruct([]messageformat.Part{
			open("a"),
			textOf("x"),
			closeTag("b"),
		}, markup.WithLogger(log))

		require.Len(t, tree, 1)
		span, ok := tree[0].(markup.Span)
		require.True(t, ok)
		assert.Equal(t, "a", span.Name)
		assert.Contains(t, buf.String(), "does not match the open span")
	})

	t.Run("anomalies stay quiet on the happy path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		markup.Reconstruct([]messageformat.Part{
			open("b"), textOf("x"), closeTag("b"),
		}, markup.WithLogger(log))

		assert.Empty(t, buf.String())
	})
}

func TestReconstruct_FromEngineOutput(t *testing.T) {
	t.Parallel()

	msg := messageformat.MustParse("You have {#b}{$count :number}{/b} points")
	parts, err := messageformat.NewFormatter().FormatToParts(msg, map[string]any{"count": 1234})
	require.NoError(t, err)

	tree := markup.Reconstruct(parts)
	require.Len(t, tree, 3)

	assert.Equal(t, markup.Leaf{Part: textOf("You have ")}, tree[0])

	span, ok := tree[1].(markup.Span)
	require.True(t, ok)
	assert.Equal(t, "b", span.Name)
	require.Len(t, span.Children, 1)

	leaf, ok := span.Children[0].(markup.Leaf)
	require.True(t, ok)
	np, ok := leaf.Part.(messageformat.NumberPart)
	require.True(t, ok)
	assert.Equal(t, "1,234", np.String())

	assert.Equal(t, markup.Leaf{Part: textOf(" points")}, tree[2])
}
