package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/i18n"
)

func TestFromMap(t *testing.T) {
	t.Run("plain strings become leaves", func(t *testing.T) {
		dict := i18n.FromMap(map[string]any{
			"hello": "Hello",
			"bye":   "Bye",
		})
		assert.Equal(t, i18n.Object{
			"hello": i18n.Leaf("Hello"),
			"bye":   i18n.Leaf("Bye"),
		}, dict)
	})

	t.Run("nested maps become objects", func(t *testing.T) {
		dict := i18n.FromMap(map[string]any{
			"errors": map[string]any{
				"http": map[string]any{
					"404": "Not Found",
				},
			},
		})
		assert.Equal(t, i18n.Object{
			"errors": i18n.Object{
				"http": i18n.Object{
					"404": i18n.Leaf("Not Found"),
				},
			},
		}, dict)
	})

	t.Run("string maps become objects", func(t *testing.T) {
		dict := i18n.FromMap(map[string]any{
			"item": map[string]string{
				"one":   "an item",
				"other": "items",
			},
		})
		assert.Equal(t, i18n.Object{
			"item": i18n.Object{
				"one":   i18n.Leaf("an item"),
				"other": i18n.Leaf("items"),
			},
		}, dict)
	})

	t.Run("untyped keys are stringified", func(t *testing.T) {
		// Older YAML decoders produce map[any]any.
		dict := i18n.FromMap(map[string]any{
			"plural": map[any]any{
				1:     "one",
				"two": "two",
			},
		})
		assert.Equal(t, i18n.Object{
			"plural": i18n.Object{
				"1":   i18n.Leaf("one"),
				"two": i18n.Leaf("two"),
			},
		}, dict)
	})

	t.Run("slices become index-keyed objects", func(t *testing.T) {
		dict := i18n.FromMap(map[string]any{
			"steps": []any{"first", "second"},
			"tags":  []string{"go", "i18n"},
		})
		assert.Equal(t, i18n.Object{
			"steps": i18n.Object{
				"0": i18n.Leaf("first"),
				"1": i18n.Leaf("second"),
			},
			"tags": i18n.Object{
				"0": i18n.Leaf("go"),
				"1": i18n.Leaf("i18n"),
			},
		}, dict)
	})

	t.Run("scalars are stringified", func(t *testing.T) {
		dict := i18n.FromMap(map[string]any{
			"count":   42,
			"ratio":   2.5,
			"enabled": true,
			"nothing": nil,
		})
		assert.Equal(t, i18n.Object{
			"count":   i18n.Leaf("42"),
			"ratio":   i18n.Leaf("2.5"),
			"enabled": i18n.Leaf("true"),
			"nothing": i18n.Leaf(""),
		}, dict)
	})

	t.Run("empty string leaves are preserved", func(t *testing.T) {
		dict := i18n.FromMap(map[string]any{"blank": ""})
		assert.Equal(t, i18n.Object{"blank": i18n.Leaf("")}, dict)
	})
}

func TestObjectToMap(t *testing.T) {
	t.Run("round trips nested structure", func(t *testing.T) {
		src := map[string]any{
			"title": "Home",
			"nav": map[string]any{
				"about":   "About",
				"contact": "Contact",
			},
		}
		dict := i18n.FromMap(src)
		require.NotNil(t, dict)
		assert.Equal(t, src, dict.ToMap())
	})

	t.Run("empty object yields empty map", func(t *testing.T) {
		assert.Empty(t, i18n.Object{}.ToMap())
	})
}
