package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"tourdispatch/internal/platform/observability"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, observability.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, observability.ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelInfo, observability.ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, observability.ParseLevel(""))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLogger(&buf, slog.LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept", "component", "test")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestNoop(t *testing.T) {
	instruments := observability.Noop()

	assert.NotNil(t, instruments.Tracer("x"))
	assert.NotNil(t, instruments.Meter("x"))
}
