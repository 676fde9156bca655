// Package relocate gathers the generated artifacts and copies them into a
// publishing directory.
package relocate

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/moduledoc/internal/collector"
	"git.home.luguber.info/inful/moduledoc/internal/configdoc"
	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/index"
	"git.home.luguber.info/inful/moduledoc/internal/logfields"
	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

// Artifact is one entry of the copy manifest.
type Artifact struct {
	Name   string // file name, kept at the destination
	Source string // absolute source path
}

// Manifest lists the artifacts to publish: the configuration document, the
// component diagram, the application index, the API schema and one document
// per module, in that order.
func Manifest(m *output.Manager, modules []*model.Module) []Artifact {
	names := []string{configdoc.DocFile, index.ComponentsFile, index.DocFile, index.APISchemaFile}
	for _, mod := range modules {
		names = append(names, collector.ModuleFileName(mod.Name))
	}
	artifacts := make([]Artifact, len(names))
	for i, name := range names {
		artifacts[i] = Artifact{Name: name, Source: m.Path(name)}
	}
	return artifacts
}

// Relocator copies a fixed manifest into a destination directory.
type Relocator struct {
	manifest []Artifact
}

// New returns a Relocator for the manifest of m and modules.
func New(m *output.Manager, modules []*model.Module) *Relocator {
	return &Relocator{manifest: Manifest(m, modules)}
}

// Artifacts returns the manifest the Relocator copies.
func (r *Relocator) Artifacts() []Artifact { return r.manifest }

// Move copies every artifact into destination, creating it if needed. The
// first missing source or failed copy aborts; copies already made are kept.
// It returns the destination paths copied so far.
func (r *Relocator) Move(destination string) ([]string, error) {
	if err := os.MkdirAll(destination, 0o755); err != nil {
		return nil, ferrors.IOFailure("mkdir", destination, err)
	}

	copied := make([]string, 0, len(r.manifest))
	for _, a := range r.manifest {
		dst := filepath.Join(destination, a.Name)
		if err := output.CopyFile(a.Source, dst); err != nil {
			slog.Error("Failed to relocate artifact", logfields.Artifact(a.Name), logfields.Path(a.Source), logfields.Error(err))
			return copied, err
		}
		copied = append(copied, dst)
		slog.Debug("Relocated artifact", logfields.Artifact(a.Name), logfields.Path(dst))
	}
	slog.Info("Relocated artifacts", logfields.Path(destination), logfields.Count(len(copied)))
	return copied, nil
}
