package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xDegenDeveloper/ui-clone/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfigDefaults(t *testing.T) {
	cfg := &types.Config{}
	require.NoError(t, ReadConfig(cfg, ""))

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "Vault Explorer", cfg.Frontend.SiteName)
	assert.True(t, cfg.Frontend.Minify)
	assert.Equal(t, 10*time.Second, cfg.Frontend.PageCallTimeout)
	assert.Equal(t, ConnectionRpc, cfg.ExecutionApi.Connection)
	assert.Equal(t, 5*time.Second, cfg.ExecutionApi.CallTimeout)
	assert.Equal(t, "1 Month", cfg.Vaults.Duration)

	require.Len(t, cfg.ExecutionApi.Endpoints, 1)
	assert.Equal(t, "default", cfg.ExecutionApi.Endpoints[0].Name)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.ExecutionApi.Endpoints[0].Url)
}

func TestReadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9000"
executionapi:
  endpoints:
    - name: "archive"
      url: "http://archive:8545"
      headers:
        Authorization: "Bearer test"
vaults:
  duration: "3 Months"
  addresses:
    - "0x1111111111111111111111111111111111111111"
`)

	cfg := &types.Config{}
	require.NoError(t, ReadConfig(cfg, path))

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "Vault Explorer", cfg.Frontend.SiteName)
	assert.Equal(t, "3 Months", cfg.Vaults.Duration)
	assert.Equal(t, []string{"0x1111111111111111111111111111111111111111"}, cfg.Vaults.Addresses)

	require.Len(t, cfg.ExecutionApi.Endpoints, 1)
	assert.Equal(t, "archive", cfg.ExecutionApi.Endpoints[0].Name)
	assert.Equal(t, "Bearer test", cfg.ExecutionApi.Endpoints[0].Headers["Authorization"])
}

func TestReadConfigEnv(t *testing.T) {
	t.Setenv("VAULT_ADDRESSES", "0x1111111111111111111111111111111111111111,0x2222222222222222222222222222222222222222")
	t.Setenv("FRONTEND_SERVER_PORT", "8181")
	t.Setenv("EXECUTIONAPI_CALL_TIMEOUT", "2s")

	cfg := &types.Config{}
	require.NoError(t, ReadConfig(cfg, ""))

	assert.Len(t, cfg.Vaults.Addresses, 2)
	assert.Equal(t, "8181", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.ExecutionApi.CallTimeout)
}

func TestReadConfigConnection(t *testing.T) {
	t.Run("public without url", func(t *testing.T) {
		path := writeConfigFile(t, "executionapi:\n  connection: \"public\"\n")
		err := ReadConfig(&types.Config{}, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publicRpcUrl")
	})

	t.Run("public with url", func(t *testing.T) {
		path := writeConfigFile(t, "executionapi:\n  connection: \"public\"\nfrontend:\n  publicRpcUrl: \"https://rpc.example.org\"\n")
		cfg := &types.Config{}
		require.NoError(t, ReadConfig(cfg, path))
		assert.Equal(t, ConnectionPublic, cfg.ExecutionApi.Connection)
	})

	t.Run("unknown mode", func(t *testing.T) {
		path := writeConfigFile(t, "executionapi:\n  connection: \"carrier-pigeon\"\n")
		require.Error(t, ReadConfig(&types.Config{}, path))
	})

	t.Run("rpc without endpoints", func(t *testing.T) {
		path := writeConfigFile(t, "executionapi:\n  endpoint: \"\"\n")
		require.Error(t, ReadConfig(&types.Config{}, path))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, ReadConfig(&types.Config{}, filepath.Join(t.TempDir(), "missing.yml")))
	})
}
