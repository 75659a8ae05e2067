package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "localhost", cfg.World.Host)
	assert.Equal(t, 12345, cfg.World.Port)
	assert.Nil(t, cfg.WorldIDOrNil())
	assert.Equal(t, 1, cfg.Connection.WorkerThreads)
	assert.Equal(t, 10*time.Second, cfg.Connection.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.Connection.HandshakeTimeout)
	assert.True(t, cfg.Connection.KeepAlive)
	assert.True(t, cfg.Connection.TCPNoDelay)
	assert.True(t, cfg.Reconnect.Enabled)
	assert.Equal(t, 10, cfg.Reconnect.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Reconnect.InitialDelay)
	assert.Equal(t, 30*time.Second, cfg.Reconnect.MaxDelay)
	assert.Equal(t, 2.0, cfg.Reconnect.BackoffMultiplier)
	assert.Equal(t, 30*time.Second, cfg.Message.ResponseTimeout)
	assert.Equal(t, 10*time.Second, cfg.Message.QueryTimeout)
	assert.Equal(t, 1000, cfg.Message.MaxPendingResponses)
	assert.Equal(t, ":3000", cfg.DebugFeed.ListenAddress)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worldsim.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[world]
host = "vcm-1.example"
id = 7

[reconnect]
initial_delay = "100ms"
max_attempts = -1

[message]
query_timeout = "2s"
`), 0o600))

	t.Setenv("WORLDSIM_WORLD_PORT", "23456")
	t.Setenv("WORLDSIM_MESSAGE_ACK_INBOUND", "false")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "vcm-1.example", cfg.World.Host)
	assert.Equal(t, 23456, cfg.World.Port)
	require.NotNil(t, cfg.WorldIDOrNil())
	assert.Equal(t, int64(7), *cfg.WorldIDOrNil())
	assert.Equal(t, 100*time.Millisecond, cfg.Reconnect.InitialDelay)
	assert.Equal(t, -1, cfg.Reconnect.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Message.QueryTimeout)
	assert.False(t, cfg.Message.AckInbound)
	assert.Equal(t, 30*time.Second, cfg.Message.ResponseTimeout)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("WORLDSIM_WORLD_PORT", "0")
	t.Setenv("WORLDSIM_CONNECTION_WORKER_THREADS", "0")

	_, err := Load(viper.New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "world.port 0 is out of range")
	assert.Contains(t, err.Error(), "connection.worker_threads")
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
