package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Makepad-fr/staff/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "staff.log")

	log, err := logger.New("development", "", path)
	require.NoError(t, err)
	log.Info("fetch finished")
	log.Debug("not at info level")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "fetch finished")
	assert.Contains(t, string(b), `"env":"development"`)
	assert.NotContains(t, string(b), "not at info level")
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"local":       zapcore.DebugLevel,
		"development": zapcore.InfoLevel,
		"production":  zapcore.WarnLevel,
		"":            zapcore.ErrorLevel,
	}
	for env, want := range tests {
		log, err := logger.New(env, "", filepath.Join(t.TempDir(), "l.log"))
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(want), "env %q should enable %s", env, want)
		if want > zapcore.DebugLevel {
			assert.False(t, log.Core().Enabled(want-1), "env %q should not enable %s", env, want-1)
		}
	}
}

func TestNew_LevelOverride(t *testing.T) {
	t.Parallel()

	log, err := logger.New("production", "debug", filepath.Join(t.TempDir(), "l.log"))
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = logger.New("local", "loud", "")
	assert.Error(t, err)
}
