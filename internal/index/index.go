// Package index writes the application-level document that cross-references
// every module document and the peripheral artifacts.
package index

import (
	"strings"

	"git.home.luguber.info/inful/moduledoc/internal/collector"
	"git.home.luguber.info/inful/moduledoc/internal/configdoc"
	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

// Artifact names referenced from the index.
const (
	DocFile        = "application.adoc"
	APISchemaFile  = "openapi.json"
	ComponentsFile = "components.puml"
)

// Render returns the index document for app: heading, API schema and
// component diagram references, one reference per module in model order and
// a final configuration reference. The configuration reference is always
// present, whether or not the configuration document was produced.
func Render(app *model.Application) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\n\n")
	}

	line("== " + app.Name)
	line("=== Reference documentation:")
	line("xref:" + APISchemaFile + "#[Rest API]")
	line("xref:" + ComponentsFile + "#[Components]")
	for _, m := range app.Modules {
		line("<<" + collector.ModuleFileName(m.Name) + "#," + m.DisplayName + " Module>>")
	}
	line("<<" + configdoc.DocFile + "#,Configuration>>")
	return b.String()
}

// Write truncate-creates DocFile in the output directory.
func Write(m *output.Manager, app *model.Application) error {
	return m.WriteFile(DocFile, []byte(Render(app)))
}
