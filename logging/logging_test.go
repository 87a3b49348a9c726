package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/compound-engine/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Debug("hidden")
	logger.Info("quote computed", "principal", "1000.00")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "quote computed", entry["msg"])
	assert.Equal(t, "1000.00", entry["principal"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_TextAndFallbackLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("nonsense", "text", &buf)

	logger.Debug("hidden")
	logger.Warn("slow request", "path", "/api/compound")

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "path=/api/compound")
	assert.NotContains(t, buf.String(), "hidden")
}
