package config

import (
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

// Validate checks field values that defaults cannot repair.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Application.Name) == "" {
		return ferrors.ValidationError("application.name is required").Build()
	}
	if strings.ContainsAny(c.Application.Name, "\n\r") {
		return ferrors.ValidationError("application.name must be a single line").
			WithContext("value", c.Application.Name).
			Build()
	}
	if filepath.IsAbs(c.Output.Subdir) || escapes(c.Output.Subdir) {
		return ferrors.ValidationError("output.subdir must stay inside the build root").
			WithContext("value", c.Output.Subdir).
			Build()
	}
	if strings.ContainsAny(c.Configuration.Resource, `/\`) {
		return ferrors.ValidationError("configuration.resource must be a file name").
			WithContext("value", c.Configuration.Resource).
			Build()
	}
	if _, err := logLevelNormalizer.NormalizeWithError(c.Logging.Level); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid logging.level").Fatal().Build()
	}
	if _, err := logFormatNormalizer.NormalizeWithError(c.Logging.Format); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid logging.format").Fatal().Build()
	}
	return nil
}

func escapes(rel string) bool {
	clean := filepath.Clean(rel)
	return clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
