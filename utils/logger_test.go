package utils

import (
	"testing"

	"rootsdental/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func rebuildLogger(t *testing.T, env, level string) {
	t.Helper()
	prevEnv, prevLevel := config.AppConfig.Env, config.AppConfig.LogLevel
	t.Cleanup(func() {
		config.AppConfig.Env, config.AppConfig.LogLevel = prevEnv, prevLevel
		Logger = nil
	})
	config.AppConfig.Env = env
	config.AppConfig.LogLevel = level
	Logger = nil
	InitializeLogger()
	require.NotNil(t, Logger)
}

func TestLoggerHonorsConfiguredLevel(t *testing.T) {
	rebuildLogger(t, "development", "warn")

	core := Logger.Core()
	assert.True(t, core.Enabled(zapcore.WarnLevel))
	assert.False(t, core.Enabled(zapcore.InfoLevel))
}

func TestLoggerDefaultsByEnvironment(t *testing.T) {
	rebuildLogger(t, "production", "")
	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))

	rebuildLogger(t, "development", "")
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}

func TestLoggerIgnoresBogusLevel(t *testing.T) {
	rebuildLogger(t, "production", "shouting")
	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
}
