package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-keys/app"
	"github.com/anyproto/any-keys/app/logger"
)

const testYaml = `
home: /var/lib/anykeys
log:
  defaultLevel: info
  levels:
    - name: common.keystore
      level: debug
metric:
  addr: 127.0.0.1:8000
keyStore:
  kdf:
    time: 2
    memory: 1024
    threads: 1
auditLog:
  path: /var/log/anykeys/audit.log
`

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYaml), 0o600))

	c, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/anykeys", c.Home)
	assert.Equal(t, "info", c.GetLogger().DefaultLevel)
	assert.Equal(t, []logger.NamedLevel{{Name: "common.keystore", Level: "debug"}}, c.GetLogger().Levels)
	assert.Equal(t, "127.0.0.1:8000", c.GetMetric().Addr)
	assert.Equal(t, uint32(2), c.GetKeyStore().KDF.Time)
	assert.Equal(t, "/var/log/anykeys/audit.log", c.GetFileLog().Path)

	require.NoError(t, c.Init(new(app.App)))
	assert.Equal(t, filepath.Join("/var/lib/anykeys", "keys"), c.GetKeyStore().Path)

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFromFile(filepath.Join(t.TempDir(), "none.yml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("broken yaml", func(t *testing.T) {
		broken := filepath.Join(t.TempDir(), "broken.yml")
		require.NoError(t, os.WriteFile(broken, []byte("home: [\n"), 0o600))
		_, err := NewFromFile(broken)
		assert.Error(t, err)
	})
}

func TestConfig_Defaults(t *testing.T) {
	c := New("")
	require.NoError(t, c.Init(new(app.App)))
	assert.Equal(t, DefaultHome(), c.Home)
	assert.Equal(t, filepath.Join(DefaultHome(), "keys"), c.GetKeyStore().Path)
	assert.Equal(t, CName, c.Name())
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/home")
	t.Setenv(EnvLogLevel, "common.*=debug;warn")
	t.Setenv(EnvMetricAddr, ":9090")
	t.Setenv(EnvAuditLog, "/tmp/audit.log")

	c := New("/other")
	c.ApplyEnv()
	assert.Equal(t, "/tmp/home", c.Home)
	assert.Equal(t, ":9090", c.GetMetric().Addr)
	assert.Equal(t, "/tmp/audit.log", c.GetFileLog().Path)
	assert.Equal(t, []logger.NamedLevel{
		{Name: "common.*", Level: "debug"},
		{Name: "*", Level: "warn"},
	}, c.GetLogger().Levels)
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvMetricAddr+"=127.0.0.1:9999\n"), 0o600))
	t.Setenv(EnvMetricAddr, "")
	require.NoError(t, os.Unsetenv(EnvMetricAddr))

	require.NoError(t, LoadEnvFiles(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "127.0.0.1:9999", os.Getenv(EnvMetricAddr))

	c := New(dir)
	c.ApplyEnv()
	assert.Equal(t, "127.0.0.1:9999", c.GetMetric().Addr)
}
