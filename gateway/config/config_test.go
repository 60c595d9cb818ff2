package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
)

func TestConfig_EnvThenFile(t *testing.T) {
	t.Setenv("GATEWAY_HTTP_PORT", "8181")
	t.Setenv("SHAREIT_SERVER_HOST", "server")
	t.Setenv("CB_TIMEOUT", "10s")

	var c Config
	WithWriteTimeout(time.Minute)(&c)
	require.NoError(t, envconfig.Process("", &c))

	require.Equal(t, "8181", c.Server.Port)
	require.Equal(t, "server", c.ShareitServer.Host)
	require.Equal(t, "9090", c.ShareitServer.Port)
	require.Equal(t, 30*time.Second, c.ShareitServer.Timeout)
	require.Equal(t, 10*time.Second, c.CircuitBreaker.Timeout)
	require.Equal(t, 20, c.CircuitBreaker.RecordLength)
	require.Equal(t, time.Minute, c.Server.WriteTimeout)

	path := filepath.Join(t.TempDir(), "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
shareitServer:
  port: "9999"
  timeout: 2s
circuitBreaker:
  percentile: 0.8
`), 0o600))
	require.NoError(t, loadFile(path, &c))

	require.Equal(t, "server", c.ShareitServer.Host)
	require.Equal(t, "9999", c.ShareitServer.Port)
	require.Equal(t, 2*time.Second, c.ShareitServer.Timeout)
	require.Equal(t, 0.8, c.CircuitBreaker.Percentile)
	require.Equal(t, 10*time.Second, c.CircuitBreaker.Timeout)
}
