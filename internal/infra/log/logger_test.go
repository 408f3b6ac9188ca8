package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup_FileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, Setup(Options{File: path, Level: "debug"}))
	t.Cleanup(func() { _ = Setup(Options{}) })

	LogInfo("Chart rendered", zap.String("kind", "bar"), zap.Int("width", 1000))
	LogDebug("debug line")
	LogError("Display failed", zap.Int64("duration_ms", 12))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "INFO Chart rendered")
	assert.Contains(t, content, `"kind":"bar"`)
	assert.Contains(t, content, `"width":1000`)
	assert.Contains(t, content, "DEBUG debug line")
	assert.Contains(t, content, "ERROR Display failed")
}

func TestSetup_LevelFiltersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Setup(Options{File: path, Level: "warn"}))
	t.Cleanup(func() { _ = Setup(Options{}) })

	LogInfo("hidden")
	LogWarn("shown")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "WARN shown")
}

func TestSetup_InvalidLevel(t *testing.T) {
	err := Setup(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestExtractDuration(t *testing.T) {
	assert.Equal(t, int64(42), extractDuration([]zap.Field{zap.String("a", "b"), zap.Int64("duration_ms", 42)}))
	assert.Equal(t, int64(0), extractDuration([]zap.Field{zap.String("duration_ms", "42")}))
	assert.Equal(t, int64(0), extractDuration(nil))
}
