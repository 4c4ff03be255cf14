package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerLevels(t *testing.T) {
	logger, err := SetupLogger("warn", false)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger, err = SetupLogger("warn", true)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger, err = SetupLogger("", false)
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())

	_, err = SetupLogger("loud", false)
	assert.Error(t, err)
}

func TestSetupFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klondike.log")

	logger, closer, err := SetupFileLogger(path, "info", false)
	require.NoError(t, err)
	logger.Info("Game started", "seed", 42)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Game started")
	assert.Contains(t, string(data), "seed=42")

	_, _, err = SetupFileLogger(filepath.Join(t.TempDir(), "missing", "x.log"), "info", false)
	assert.Error(t, err)
}
