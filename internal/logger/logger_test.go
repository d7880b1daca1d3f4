package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetBeforeInit(t *testing.T) {
	logger = nil
	assert.NotNil(t, Get())
}

func TestInitLevels(t *testing.T) {
	require.NoError(t, Init("development", "debug"))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("production", "warn"))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Core().Enabled(zapcore.WarnLevel))
	Sync()
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("development", "loud"))
}
