package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `server:
  endpoint_url: https://lakefs.example.org
credentials:
  access_key_id: AKIAEXAMPLE
  secret_access_key: shhh-secret
`
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://lakefs.example.org", cfg.EndpointURL)
	assert.Equal(t, "AKIAEXAMPLE", cfg.AccessKeyID)
	assert.Equal(t, "shhh-secret", cfg.SecretAccessKey)
}

func TestLoadFile_Missing(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0644))

	cfg, err := LoadFile(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	content := `server:
  endpoint_url: https://from-file.example.org
credentials:
  access_key_id: file-key
  secret_access_key: file-secret
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFileName), []byte(content), 0644))

	t.Setenv(EnvEndpointURL, "https://from-env.example.org")
	t.Setenv(EnvSecretAccessKey, "env-secret")

	cfg, err := Load()
	require.NoError(t, err)

	// Env wins where set; the file fills the rest.
	assert.Equal(t, "https://from-env.example.org", cfg.EndpointURL)
	assert.Equal(t, "file-key", cfg.AccessKeyID)
	assert.Equal(t, "env-secret", cfg.SecretAccessKey)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvEndpointURL, "https://env-only.example.org")
	t.Setenv(EnvAccessKeyID, "env-key")
	t.Setenv(EnvSecretAccessKey, "env-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env-only.example.org", cfg.EndpointURL)
	assert.Equal(t, "env-key", cfg.AccessKeyID)
	assert.Equal(t, "env-secret", cfg.SecretAccessKey)
}
