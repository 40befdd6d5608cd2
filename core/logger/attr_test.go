package logger_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("lookup", slog.String("key", "title"), slog.Int("candidates", 3))
	require.Equal(t, "lookup", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "key", g[0].Key)
	assert.Equal(t, "candidates", g[1].Key)
}

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Translation Context Tests
// ============================================================================

func TestTranslationAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attr     slog.Attr
		wantKey  string
		wantVal  string
		wantZero bool
	}{
		{name: "language", attr: logger.Language("pl"), wantKey: "language", wantVal: "pl"},
		{name: "empty language", attr: logger.Language(""), wantZero: true},
		{name: "namespace", attr: logger.Namespace("checkout"), wantKey: "namespace", wantVal: "checkout"},
		{name: "empty namespace", attr: logger.Namespace(""), wantZero: true},
		{name: "translation key", attr: logger.TranslationKey("cart.total"), wantKey: "key", wantVal: "cart.total"},
		{name: "empty translation key", attr: logger.TranslationKey(""), wantZero: true},
		{name: "tag", attr: logger.Tag("bold"), wantKey: "tag", wantVal: "bold"},
		{name: "empty tag", attr: logger.Tag(""), wantZero: true},
		{name: "file", attr: logger.File("locales/en.json"), wantKey: "file", wantVal: "locales/en.json"},
		{name: "empty file", attr: logger.File(""), wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.wantZero {
				assert.True(t, tt.attr.Equal(slog.Attr{}))
				return
			}
			assert.Equal(t, tt.wantKey, tt.attr.Key)
			assert.Equal(t, tt.wantVal, tt.attr.Value.String())
		})
	}
}

// ============================================================================
// Performance and Timing Tests
// ============================================================================

func TestDuration(t *testing.T) {
	t.Parallel()
	attr := logger.Duration(2 * time.Second)
	assert.Equal(t, "duration", attr.Key)
	assert.Equal(t, 2*time.Second, attr.Value.Duration())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-time.Millisecond)
	attr := logger.Elapsed(start)
	assert.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), time.Millisecond)
}

// ============================================================================
// Generic Metadata Tests
// ============================================================================

func TestGenericAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "component", logger.Component("resolver").Key)
	assert.Equal(t, "event", logger.Event("reload").Key)
	assert.Equal(t, "version", logger.Version("v1.2.3").Key)

	count := logger.Count("keys", 42)
	assert.Equal(t, "keys", count.Key)
	assert.Equal(t, int64(42), count.Value.Int64())

	kv := logger.Key("layout", "flat")
	assert.Equal(t, "layout", kv.Key)
	assert.True(t, logger.Key("nil", nil).Equal(slog.Attr{}))
}

// ============================================================================
// Debugging Tests
// ============================================================================

func TestStack(t *testing.T) {
	t.Parallel()
	attr := logger.Stack()
	assert.Equal(t, "stack", attr.Key)
	assert.Contains(t, attr.Value.String(), "goroutine")
}

func TestCaller(t *testing.T) {
	t.Parallel()
	attr := logger.Caller()
	require.Equal(t, "caller", attr.Key)
	assert.True(t, strings.Contains(attr.Value.String(), "attr_test.go"))
}
