package diagram

import (
	"context"
	"strings"

	"git.home.luguber.info/inful/moduledoc/internal/index"
	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

// PlantUML writes the component diagram: one package per module holding one
// component per component type, in model order.
type PlantUML struct{}

// Generate implements Generator.
func (PlantUML) Generate(_ context.Context, m *output.Manager, app *model.Application) error {
	return m.WriteFile(index.ComponentsFile, []byte(RenderPlantUML(app)))
}

// RenderPlantUML returns the diagram source for app.
func RenderPlantUML(app *model.Application) string {
	var b strings.Builder
	b.WriteString("@startuml\n")
	if app.Name != "" {
		b.WriteString("title " + app.Name + "\n")
	}
	for _, mod := range app.Modules {
		b.WriteString("package \"" + mod.DisplayName + "\" as " + alias(mod.Name) + " {\n")
		for _, c := range mod.Components {
			b.WriteString("  component \"" + c.SimpleName() + "\" as " + alias(mod.Name+"_"+c.Type) + "\n")
		}
		b.WriteString("}\n")
	}
	b.WriteString("@enduml\n")
	return b.String()
}

// alias maps s onto the identifier alphabet PlantUML accepts for aliases.
func alias(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, s)
}
