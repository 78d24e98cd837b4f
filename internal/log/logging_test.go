package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestSetupSplitsStreams(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	logger, closers, err := setup("debug", "", &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("template loaded", "path", "1.x.template")
	logger.Error("template failed", "path", "x.template")

	assert.Contains(t, stdout.String(), "template loaded")
	assert.NotContains(t, stdout.String(), "template failed")
	assert.Contains(t, stderr.String(), "template failed")
	assert.NotContains(t, stderr.String(), "template loaded")
}

func TestSetupLevel(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	logger, _, err := setup("warn", "", &stdout, &stderr)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "shown")
}

func TestSetupFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gen.log")

	var stdout, stderr bytes.Buffer
	logger, closers, err := setup("info", path, &stdout, &stderr)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Info("generated", "files", 7)
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "files=7")
	assert.Contains(t, stderr.String(), "generated")
	assert.Empty(t, stdout.String())
}

func TestSetupKeepsAttrsAcrossStreams(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	logger, _, err := setup("info", "", &stdout, &stderr)
	require.NoError(t, err)

	logger = logger.With("template", "1.x.template").WithGroup("fill")
	logger.Info("filled", "kind", "Byte")
	logger.Error("failed", "kind", "Short")

	assert.Contains(t, stdout.String(), "template=1.x.template")
	assert.Contains(t, stdout.String(), "fill.kind=Byte")
	assert.Contains(t, stderr.String(), "template=1.x.template")
	assert.Contains(t, stderr.String(), "fill.kind=Short")
	assert.NotContains(t, stdout.String(), "Short")
}
