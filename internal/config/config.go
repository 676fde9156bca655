package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "moduledoc.yaml"

// Config represents the moduledoc configuration.
type Config struct {
	Application   ApplicationConfig   `yaml:"application"`
	Model         ModelConfig         `yaml:"model"`
	Output        OutputConfig        `yaml:"output"`
	Configuration ConfigurationConfig `yaml:"configuration"`
	APISchema     APISchemaConfig     `yaml:"api_schema"`
	Publish       PublishConfig       `yaml:"publish"`
	Logging       LoggingConfig       `yaml:"logging"`
	Metrics       MetricsConfig       `yaml:"metrics"`
	History       HistoryConfig       `yaml:"history"`
}

// ApplicationConfig names the documented application.
type ApplicationConfig struct {
	Name string `yaml:"name"`
}

// ModelConfig points at the module model file.
type ModelConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls where generated documents land.
type OutputConfig struct {
	// BuildRoot overrides build root probing when set.
	BuildRoot string `yaml:"build_root,omitempty"`
	WorkDir   string `yaml:"work_dir"`
	Subdir    string `yaml:"subdir"`
	// AppendToExisting keeps module files from earlier runs instead of resetting them.
	AppendToExisting bool `yaml:"append_to_existing"`
}

// ConfigurationConfig locates the properties resource rendered into configuration.adoc.
type ConfigurationConfig struct {
	Resource   string   `yaml:"resource"`
	SearchPath []string `yaml:"search_path"`
}

// APISchemaConfig names an externally produced openapi.json.
type APISchemaConfig struct {
	Source string `yaml:"source,omitempty"`
}

// PublishConfig is the default moveToFolder destination.
type PublishConfig struct {
	Destination string `yaml:"destination,omitempty"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	// Textfile receives a Prometheus text exposition after each run.
	Textfile string `yaml:"textfile,omitempty"`
}

// HistoryConfig enables the run log.
type HistoryConfig struct {
	// Path of the SQLite database; empty disables recording.
	Path string `yaml:"path,omitempty"`
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, ferrors.IOFailure("read", configPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		c, ok := ferrors.AsClassified(err)
		if ok {
			return nil, c.WithContext("path", configPath)
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML configuration after expanding environment variables,
// applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			Build()
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Config{
		Application: ApplicationConfig{Name: "app"},
		Model:       ModelConfig{Path: DefaultModelPath},
		Output: OutputConfig{
			WorkDir: ".",
			Subdir:  defaultSubdir,
		},
		Configuration: ConfigurationConfig{
			Resource:   defaultResource,
			SearchPath: []string{"src/main/resources"},
		},
		Publish: PublishConfig{Destination: "docs/modules"},
		History: HistoryConfig{Path: ".moduledoc/history.db"},
		Logging: LoggingConfig{Level: string(LogLevelInfo), Format: string(LogFormatText)},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.IOFailure("write", configPath, err)
	}
	return nil
}

// Resolve anchors a relative path at output.work_dir. Empty stays empty.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Output.WorkDir, p)
}

// SearchPath returns configuration.search_path resolved against the work dir.
func (c *Config) SearchPath() []string {
	out := make([]string, len(c.Configuration.SearchPath))
	for i, dir := range c.Configuration.SearchPath {
		out[i] = c.Resolve(dir)
	}
	return out
}
