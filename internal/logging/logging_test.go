package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseLevel(tc.in), "level %q", tc.in)
	}
}

func TestNewStructuredLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, "recipefinder", "v0.1.0", "warn")

	logger.Info("dropped")
	logger.Warn("upstream failed", "path", "filter.php")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "upstream failed", entry["msg"])
	assert.Equal(t, "recipefinder", entry["module"])
	assert.Equal(t, "v0.1.0", entry["version"])
	assert.Equal(t, "filter.php", entry["path"])
	assert.NotContains(t, entry, "source")
}
