package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every JELLYSHELL_ env var that Load() reads.
var allConfigKeys = []string{
	"JELLYSHELL_SERVER_URL",
	"JELLYSHELL_CLIENT_NAME",
	"JELLYSHELL_CLIENT_VERSION",
	"JELLYSHELL_DEVICE_NAME",
	"JELLYSHELL_DEVICE_ID",
	"JELLYSHELL_DB_PATH",
	"JELLYSHELL_LISTEN_ADDR",
	"JELLYSHELL_LOG_LEVEL",
	"JELLYSHELL_LOG_FORMAT",
}

// isolateConfigEnv saves and unsets all JELLYSHELL_ env vars so tests don't
// inherit values from the host environment.
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JELLYSHELL_SERVER_URL", "https://media.example.com/")
	t.Setenv("JELLYSHELL_CLIENT_NAME", "Tester")
	t.Setenv("JELLYSHELL_CLIENT_VERSION", "1.2.3")
	t.Setenv("JELLYSHELL_DEVICE_NAME", "Windows")
	t.Setenv("JELLYSHELL_DEVICE_ID", "1")
	t.Setenv("JELLYSHELL_DB_PATH", "/tmp/test.db")
	t.Setenv("JELLYSHELL_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("JELLYSHELL_LOG_LEVEL", "DEBUG")
	t.Setenv("JELLYSHELL_LOG_FORMAT", "json")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com", cfg.ServerURL)
	assert.Equal(t, "Tester", cfg.ClientName)
	assert.Equal(t, "1.2.3", cfg.ClientVersion)
	assert.Equal(t, "Windows", cfg.DeviceName)
	assert.Equal(t, "1", cfg.DeviceID)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JELLYSHELL_SERVER_URL", "http://localhost:8096")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "Jellyshell", cfg.ClientName)
	assert.Equal(t, "0.0.1", cfg.ClientVersion)
	assert.Equal(t, runtime.GOOS, cfg.DeviceName)
	assert.Equal(t, "jellyshell.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:8096", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)

	_, err = uuid.Parse(cfg.DeviceID)
	assert.NoError(t, err, "default device id should be a UUID")
}

func TestLoad_DefaultDeviceIDStable(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JELLYSHELL_SERVER_URL", "http://localhost:8096")

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.Equal(t, first.DeviceID, second.DeviceID)
}

func TestLoad_MissingServerURL(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JELLYSHELL_SERVER_URL is required")
}

func TestLoad_InvalidServerURL(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JELLYSHELL_SERVER_URL", "not a url")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JELLYSHELL_SERVER_URL")
}

func TestLoad_InvalidListenAddr(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JELLYSHELL_SERVER_URL", "http://localhost:8096")
	t.Setenv("JELLYSHELL_LISTEN_ADDR", "no-port")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JELLYSHELL_LISTEN_ADDR")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JELLYSHELL_SERVER_URL", "http://localhost:8096")
	t.Setenv("JELLYSHELL_LOG_LEVEL", "verbose")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JELLYSHELL_LOG_LEVEL")
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn", LogFormat: "json"}
	logger := cfg.NewLogger(&buf)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	logger.Warn("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
