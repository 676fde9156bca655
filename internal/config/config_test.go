package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "application:\n  name: shop\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shop", cfg.Application.Name)
	assert.Equal(t, DefaultModelPath, cfg.Model.Path)
	assert.Equal(t, ".", cfg.Output.WorkDir)
	assert.Equal(t, "spring-modulith-docs", cfg.Output.Subdir)
	assert.False(t, cfg.Output.AppendToExisting)
	assert.Equal(t, "application.properties", cfg.Configuration.Resource)
	assert.Equal(t, []string{"src/main/resources"}, cfg.Configuration.SearchPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("MODULEDOC_TEST_DEST", "/srv/docs")
	path := writeConfig(t, `
application:
  name: shop
publish:
  destination: ${MODULEDOC_TEST_DEST}/modules
output:
  build_root: out
  append_to_existing: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/docs/modules", cfg.Publish.Destination)
	assert.Equal(t, "out", cfg.Output.BuildRoot)
	assert.True(t, cfg.Output.AppendToExisting)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(writeConfig(t, "application:\n  name: shop\nbogus: 1\n"))
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	})

	t.Run("empty document needs a name", func(t *testing.T) {
		_, err := Load(writeConfig(t, ""))
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"blank name", func(c *Config) { c.Application.Name = "  " }},
		{"multi-line name", func(c *Config) { c.Application.Name = "a\nb" }},
		{"absolute subdir", func(c *Config) { c.Output.Subdir = "/docs" }},
		{"escaping subdir", func(c *Config) { c.Output.Subdir = "../docs" }},
		{"resource with path", func(c *Config) { c.Configuration.Resource = "config/app.properties" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Application: ApplicationConfig{Name: "shop"}}
			cfg.applyDefaults()
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.Application.Name)
	assert.Equal(t, "docs/modules", cfg.Publish.Destination)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	require.NoError(t, Init(path, true))
}

func TestLogNormalization(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel(" WARNING "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("verbose"))
	assert.Equal(t, slog.LevelDebug, NormalizeLogLevel("debug").Slog())
	assert.Equal(t, slog.LevelError, LogLevelError.Slog())
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat("JSON"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat(""))
}

func TestResolve(t *testing.T) {
	cfg := &Config{Application: ApplicationConfig{Name: "shop"}, Output: OutputConfig{WorkDir: "/work/shop"}}
	cfg.applyDefaults()

	assert.Equal(t, "", cfg.Resolve(""))
	assert.Equal(t, "/abs/model.yaml", cfg.Resolve("/abs/model.yaml"))
	assert.Equal(t, filepath.Join("/work/shop", DefaultModelPath), cfg.Resolve(cfg.Model.Path))
	assert.Equal(t, []string{filepath.Join("/work/shop", "src/main/resources")}, cfg.SearchPath())
}

func TestLoadHistory(t *testing.T) {
	cfg, err := Load(writeConfig(t, "application:\n  name: shop\nhistory:\n  path: runs.db\n"))
	require.NoError(t, err)
	assert.Equal(t, "runs.db", cfg.History.Path)
}
