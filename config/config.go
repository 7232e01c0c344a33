package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for bucketbridge.
type Config struct {
	GitLab GitLabConfig `yaml:"gitlab"`
	S3     S3Config     `yaml:"s3"`
}

// GitLabConfig describes the target project and branch the bridge writes to.
type GitLabConfig struct {
	BaseURL       string `yaml:"base_url"`        // e.g. https://gitlab.example.com
	ProjectID     string `yaml:"project_id"`      // Numeric ID or "group/project" path
	Branch        string `yaml:"branch"`          // Target branch for all commits
	Token         string `yaml:"token"`           // Inline, ${ENV_VAR}, or file path
	TokenSecretID string `yaml:"token_secret_id"` // AWS Secrets Manager secret ID; takes precedence over token
}

// S3Config holds the storage-side connection settings.
type S3Config struct {
	Region         string `yaml:"region"`
	Endpoint       string `yaml:"endpoint"` // Optional, for S3-compatible stores
	AccessKey      string `yaml:"access_key"`
	SecretKey      string `yaml:"secret_key"`
	ForcePathStyle bool   `yaml:"force_path_style"`
	MaxObjectBytes int64  `yaml:"max_object_bytes"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment variables
// and resolving token file paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	// Resolve tokens and credentials (env vars and file paths)
	cfg.GitLab.Token = ResolveToken(cfg.GitLab.Token)
	cfg.S3.AccessKey = ResolveToken(cfg.S3.AccessKey)
	cfg.S3.SecretKey = ResolveToken(cfg.S3.SecretKey)

	if validateErr := Validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".bucketbridge.yaml",
		".bucketbridge.yml",
		"bucketbridge.yaml",
		"bucketbridge.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the token from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// Validate checks for required configuration values.
func Validate(cfg *Config) error {
	if cfg.GitLab.BaseURL == "" {
		return errors.New("gitlab.base_url is required")
	}
	if cfg.GitLab.ProjectID == "" {
		return errors.New("gitlab.project_id is required")
	}
	if cfg.GitLab.Branch == "" {
		return errors.New("gitlab.branch is required")
	}
	if cfg.GitLab.Token == "" && cfg.GitLab.TokenSecretID == "" {
		return errors.New(
			"one of gitlab.token (inline, via ${ENV_VAR}, or as file path) or gitlab.token_secret_id is required",
		)
	}
	if cfg.S3.MaxObjectBytes < 0 {
		return errors.New("s3.max_object_bytes must not be negative")
	}

	return nil
}
