package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/programme-lv/bojclient/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("trace")
	assert.Error(t, err)
}

func TestNewWritesPlainTextToBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("submitted solution", "solution_id", 101)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "submitted solution")
	assert.Contains(t, out, "solution_id=101")
	assert.NotContains(t, out, "\x1b[")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
