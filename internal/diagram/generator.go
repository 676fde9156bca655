package diagram

import (
	"context"

	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

// Generator writes one or more primary artifacts into the output directory.
type Generator interface {
	Generate(ctx context.Context, m *output.Manager, app *model.Application) error
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, m *output.Manager, app *model.Application) error

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, m *output.Manager, app *model.Application) error {
	return f(ctx, m, app)
}

// Chain runs generators in order and stops at the first error.
type Chain []Generator

// Generate implements Generator.
func (c Chain) Generate(ctx context.Context, m *output.Manager, app *model.Application) error {
	for _, g := range c {
		if g == nil {
			continue
		}
		if err := g.Generate(ctx, m, app); err != nil {
			return err
		}
	}
	return nil
}
