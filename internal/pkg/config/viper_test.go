package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
app:
  name: formguard
  server:
    http:
      read_timeout_seconds: 5
    cors: "http://a.test, ,http://b.test"
instrument:
  enabled: false
  trace_sample_ratio: 0.25
modules:
  identity:
    password_min_length: 6
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cfg.Close()) })

	assert.Equal(t, "formguard", cfg.GetString("app.name"))
	assert.Equal(t, 5*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetArray("app.server.cors"))
	assert.False(t, cfg.GetBool("instrument.enabled"))
	assert.InDelta(t, 0.25, cfg.GetFloat64("instrument.trace_sample_ratio"), 1e-9)
	assert.Equal(t, 6, cfg.GetInt("modules.identity.password_min_length"))
	assert.Zero(t, cfg.GetInt("modules.identity.missing"))
	assert.Nil(t, cfg.GetArray("missing.key"))
}

func TestNewViperFromBytes_RequiresType(t *testing.T) {
	_, err := NewViperFromBytes(" ", []byte(testYAML))
	assert.Error(t, err)
}

func TestNewViperFromBytes_EnvOverride(t *testing.T) {
	t.Setenv("FORMGUARD_APP_NAME", "from-env")

	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.GetString("app.name"))
}

func TestNewViper(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(testYAML), 0o600))

	cfg, err := NewViper(file)
	require.NoError(t, err)

	assert.Equal(t, "formguard", cfg.GetString("app.name"))
}

func TestNewViper_MissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
