package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when no lakectl config file exists.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("lakectl config file not found")

// LakeFSConfig holds the connection settings for a lakeFS server. It is
// resolved the same two ways lakectl resolves them: LAKECTL_* environment
// variables, falling back to ~/.lakectl.yaml. Environment variables
// override file values individually.
type LakeFSConfig struct {
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
}

// lakectlFile mirrors the on-disk layout of ~/.lakectl.yaml.
type lakectlFile struct {
	Server struct {
		EndpointURL string `yaml:"endpoint_url"`
	} `yaml:"server"`
	Credentials struct {
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
	} `yaml:"credentials"`
}

// ConfigFileName is the lakectl config file looked up in the home directory.
const ConfigFileName = ".lakectl.yaml"

// Environment variable names recognized by lakectl and by this tool.
const (
	EnvEndpointURL     = "LAKECTL_SERVER_ENDPOINT_URL"
	EnvAccessKeyID     = "LAKECTL_CREDENTIALS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "LAKECTL_CREDENTIALS_SECRET_ACCESS_KEY"
)

// Load resolves the lakeFS configuration from the environment and the
// lakectl config file in the user's home directory. A missing file is
// only an error when the environment does not supply an endpoint.
func Load() (*LakeFSConfig, error) {
	cfg := &LakeFSConfig{}

	home, err := os.UserHomeDir()
	if err == nil {
		fileCfg, err := LoadFile(filepath.Join(home, ConfigFileName))
		if err != nil && !errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
		if fileCfg != nil {
			*cfg = *fileCfg
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadFile reads a lakectl config file at an explicit path.
func LoadFile(path string) (*LakeFSConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var file lakectlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return &LakeFSConfig{
		EndpointURL:     file.Server.EndpointURL,
		AccessKeyID:     file.Credentials.AccessKeyID,
		SecretAccessKey: file.Credentials.SecretAccessKey,
	}, nil
}

// applyEnv overrides individual fields from LAKECTL_* environment variables.
func applyEnv(cfg *LakeFSConfig) {
	if v := os.Getenv(EnvEndpointURL); v != "" {
		cfg.EndpointURL = v
	}
	if v := os.Getenv(EnvAccessKeyID); v != "" {
		cfg.AccessKeyID = v
	}
	if v := os.Getenv(EnvSecretAccessKey); v != "" {
		cfg.SecretAccessKey = v
	}
}
