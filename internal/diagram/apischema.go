package diagram

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/moduledoc/internal/index"
	"git.home.luguber.info/inful/moduledoc/internal/logfields"
	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

// APISchema passes an externally produced API schema through into the output
// directory. An empty Source falls back to <buildRoot>/openapi.json, where
// springdoc writes it; when that file is absent too nothing is copied.
type APISchema struct {
	Source string
}

// Generate implements Generator.
func (a APISchema) Generate(_ context.Context, m *output.Manager, _ *model.Application) error {
	source := a.Source
	if source == "" {
		source = filepath.Join(m.BuildRoot(), index.APISchemaFile)
		if fi, err := os.Stat(source); err != nil || fi.IsDir() {
			return nil
		}
	}
	dst := m.Path(index.APISchemaFile)
	src, err := filepath.Abs(source)
	if err != nil {
		src = source
	}
	if abs, err := filepath.Abs(dst); err == nil && abs == src {
		return nil
	}
	if err := m.EnsureDirectory(); err != nil {
		return err
	}
	if err := output.CopyFile(source, dst); err != nil {
		return err
	}
	slog.Debug("Copied API schema", logfields.Path(source), logfields.Artifact(index.APISchemaFile))
	return nil
}
