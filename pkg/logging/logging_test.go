package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug", input: "debug", expected: slog.LevelDebug},
		{name: "info", input: "info", expected: slog.LevelInfo},
		{name: "warn", input: "warn", expected: slog.LevelWarn},
		{name: "warning alias", input: "warning", expected: slog.LevelWarn},
		{name: "error", input: "error", expected: slog.LevelError},
		{name: "mixed case", input: "DeBuG", expected: slog.LevelDebug},
		{name: "whitespace", input: "  error  ", expected: slog.LevelError},
		{name: "empty defaults to info", input: "", expected: slog.LevelInfo},
		{name: "unknown defaults to info", input: "loud", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("test-module", "v0.0.1", "debug")
	assert.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	logger = NewStructuredLogger("test-module", "v0.0.1", "error")
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
}

func TestNewLogLogger(t *testing.T) {
	assert.NotNil(t, NewLogLogger(slog.LevelWarn))
}
