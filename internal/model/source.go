package model

import (
	"context"
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

// Source is the discovery collaborator: it enumerates the application's
// modules, components and operations together with their attached fragments.
type Source interface {
	Load(ctx context.Context) (*Application, FragmentLookup, error)
}

// StaticSource serves an in-memory model.
type StaticSource struct {
	App       *Application
	Fragments FragmentLookup
}

// Load implements Source.
func (s StaticSource) Load(context.Context) (*Application, FragmentLookup, error) {
	if s.App == nil {
		return nil, nil, ferrors.ModelError("static source has no application").Build()
	}
	if err := Validate(s.App); err != nil {
		return nil, nil, err
	}
	lookup := s.Fragments
	if lookup == nil {
		lookup = MapLookup{}
	}
	return s.App, lookup, nil
}

// Validate checks the invariants the engine relies on: module names are
// non-empty, unique, and usable as a file name component.
func Validate(app *Application) error {
	seen := make(map[string]struct{}, len(app.Modules))
	for i, m := range app.Modules {
		if m == nil {
			return ferrors.ModelError(fmt.Sprintf("module at index %d is nil", i)).Build()
		}
		if strings.TrimSpace(m.Name) == "" {
			return ferrors.ModelError(fmt.Sprintf("module at index %d has no name", i)).Build()
		}
		if strings.ContainsAny(m.Name, `/\`) {
			return ferrors.ModelError("module name contains a path separator").
				WithContext("module", m.Name).
				Build()
		}
		if _, dup := seen[m.Name]; dup {
			return ferrors.ModelError("duplicate module name").
				WithContext("module", m.Name).
				Build()
		}
		seen[m.Name] = struct{}{}
	}
	return nil
}
