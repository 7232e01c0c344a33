package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bucketbridge/config"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveToken(t *testing.T) {
	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "glpat-abc123xyz"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Equal(t, "glpat-abc123xyz", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_TOKEN_RESOLVE", "my-secret-token")
		raw := "${TEST_TOKEN_RESOLVE}"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Equal(t, "my-secret-token", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "${DEFINITELY_NOT_SET_VAR_12345}"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should read token from file when path exists", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		tokenFile := filepath.Join(tmpDir, "token.key")
		err := os.WriteFile(tokenFile, []byte("  file-based-token  \n"), 0o600)
		require.NoError(t, err)

		// when
		result := config.ResolveToken(tokenFile)

		// then
		assert.Equal(t, "file-based-token", result)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *config.Config {
		return &config.Config{
			GitLab: config.GitLabConfig{
				BaseURL:   "https://gitlab.example.com",
				ProjectID: "42",
				Branch:    "main",
				Token:     "glpat-test",
			},
		}
	}

	t.Run("should accept a complete configuration", func(t *testing.T) {
		t.Parallel()

		// when
		err := config.Validate(validConfig())

		// then
		require.NoError(t, err)
	})

	t.Run("should fail when base URL is missing", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := validConfig()
		cfg.GitLab.BaseURL = ""

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gitlab.base_url")
	})

	t.Run("should fail when project ID is missing", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := validConfig()
		cfg.GitLab.ProjectID = ""

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gitlab.project_id")
	})

	t.Run("should fail when branch is missing", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := validConfig()
		cfg.GitLab.Branch = ""

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gitlab.branch")
	})

	t.Run("should fail when neither token nor secret ID is set", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := validConfig()
		cfg.GitLab.Token = ""

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gitlab.token")
	})

	t.Run("should accept a secret ID instead of an inline token", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := validConfig()
		cfg.GitLab.Token = ""
		cfg.GitLab.TokenSecretID = "bucketbridge/gitlab-token"

		// when
		err := config.Validate(cfg)

		// then
		require.NoError(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("should load a complete config file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "bucketbridge.yaml")
		content := `
gitlab:
  base_url: https://gitlab.example.com
  project_id: "42"
  branch: main
  token: glpat-test
s3:
  region: eu-west-1
  max_object_bytes: 1048576
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com", cfg.GitLab.BaseURL)
		assert.Equal(t, "42", cfg.GitLab.ProjectID)
		assert.Equal(t, "main", cfg.GitLab.Branch)
		assert.Equal(t, "glpat-test", cfg.GitLab.Token)
		assert.Equal(t, "eu-west-1", cfg.S3.Region)
		assert.Equal(t, int64(1048576), cfg.S3.MaxObjectBytes)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

		// then
		require.Error(t, err)
	})

	t.Run("should fail on invalid yaml", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "bucketbridge.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gitlab: ["), 0o600))

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail validation on incomplete config", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "bucketbridge.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gitlab:\n  branch: main\n"), 0o600))

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
	})
}
