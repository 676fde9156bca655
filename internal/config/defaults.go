package config

import (
	"git.home.luguber.info/inful/moduledoc/internal/configdoc"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

// DefaultModelPath is where the module model is read from when unset.
const DefaultModelPath = "moduledoc-model.yaml"

const (
	defaultSubdir   = output.DefaultSubdir
	defaultResource = configdoc.DefaultResource
)

func (c *Config) applyDefaults() {
	if c.Model.Path == "" {
		c.Model.Path = DefaultModelPath
	}
	if c.Output.WorkDir == "" {
		c.Output.WorkDir = "."
	}
	if c.Output.Subdir == "" {
		c.Output.Subdir = defaultSubdir
	}
	if c.Configuration.Resource == "" {
		c.Configuration.Resource = defaultResource
	}
	if len(c.Configuration.SearchPath) == 0 {
		c.Configuration.SearchPath = []string{"src/main/resources"}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = string(LogLevelInfo)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = string(LogFormatText)
	}
}
