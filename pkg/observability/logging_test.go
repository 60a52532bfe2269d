package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"xyzzy", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestInitLoggerJSONWithService(t *testing.T) {
	var buf bytes.Buffer

	logger := InitLogger(LogConfig{
		Level:   "info",
		Format:  "json",
		Service: "plannerd",
		Output:  &buf,
	})
	logger.Info("hello", "key", "value")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "plannerd", record["service"])
	assert.Equal(t, "value", record["key"])
}

func TestInitLoggerSuppressesBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := InitLogger(LogConfig{Level: "warn", Format: "text", Output: &buf})
	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
