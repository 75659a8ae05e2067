package logging

import (
	"testing"

	"github.com/Jaydccq/mini-ups-sub002/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateLoggerHonorsLevel(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	logger, err := CreateLogger(config.LogConfig{Level: "warn"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestCreateLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := CreateLogger(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
}
