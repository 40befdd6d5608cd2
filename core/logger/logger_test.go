package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to JSON at info level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("visible", logger.Component("test"))

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, `"msg":"visible"`)
		assert.Contains(t, out, `"component":"test"`)
	})

	t.Run("text output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithText(), logger.WithOutput(&buf))

		log.Info("plain message")
		assert.Contains(t, buf.String(), "msg=\"plain message\"")
	})

	t.Run("development mode enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("lingo"), logger.WithOutput(&buf))

		require.True(t, log.Enabled(context.Background(), slog.LevelDebug))
		log.Debug("dev detail")

		out := buf.String()
		assert.Contains(t, out, "dev detail")
		assert.Contains(t, out, "app=lingo")
	})

	t.Run("custom level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithLevel(slog.LevelWarn), logger.WithOutput(&buf))

		log.Info("suppressed")
		log.Warn("kept")

		out := buf.String()
		assert.NotContains(t, out, "suppressed")
		assert.Contains(t, out, "kept")
	})

	t.Run("persistent attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttrs(slog.String("service", "i18n")),
		)

		log.Info("first")
		assert.Contains(t, buf.String(), `"service":"i18n"`)
	})
}
