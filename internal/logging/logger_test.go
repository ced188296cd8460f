package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/zwrk/workout-api/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("defaults to info", func(t *testing.T) {
		logger, err := New(config.Log{})
		require.NoError(t, err)

		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("honours configured level", func(t *testing.T) {
		logger, err := New(config.Log{Level: "warn", Development: true})
		require.NoError(t, err)

		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New(config.Log{Level: "loud"})
		assert.Error(t, err)
	})
}
