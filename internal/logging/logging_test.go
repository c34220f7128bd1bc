package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/golovatskygroup/talos-mcp/internal/config"
)

func TestNewDefaultsToInfo(t *testing.T) {
	logger, err := New(config.LogConfig{})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewHonorsLevel(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "debug"})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	logger, err := New(config.LogConfig{Level: "info", File: path})
	require.NoError(t, err)

	logger.Info("hello from the test", zap.String("k", "v"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the test")
	assert.Contains(t, string(data), `"level":"info"`)
	assert.Contains(t, string(data), `"k":"v"`)
}
