package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/moduledoc/internal/foundation/normalization"
)

// Kind identifies the granularity a fragment is attached at.
type Kind string

const (
	KindModule    Kind = "module"
	KindComponent Kind = "component"
	KindOperation Kind = "operation"
)

// Entity is anything a documentation fragment can be attached to.
type Entity interface {
	Kind() Kind
	// ID is stable across runs for an unchanged model.
	ID() string
}

// Visibility of an operation on a component's type.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPackage   Visibility = "package"
	VisibilityPrivate   Visibility = "private"
)

var visibilityNormalizer = normalization.NewNormalizer(map[string]Visibility{
	"public":    VisibilityPublic,
	"protected": VisibilityProtected,
	"package":   VisibilityPackage,
	"private":   VisibilityPrivate,
}, VisibilityPackage)

// ParseVisibility accepts the four visibility names case-insensitively. An
// omitted visibility means package, the modifier-less default, so only an
// explicit public operation contributes documentation.
func ParseVisibility(raw string) (Visibility, error) {
	return visibilityNormalizer.NormalizeWithError(raw)
}

// Application is the root of the model for one run.
type Application struct {
	Name    string
	Modules []*Module
}

// Module is a top-level organizational unit of the application.
type Module struct {
	Name        string
	DisplayName string
	Components  []*Component
}

func (m *Module) Kind() Kind { return KindModule }
func (m *Module) ID() string { return "module:" + m.Name }

// Component is a service unit belonging to exactly one module.
type Component struct {
	Module     string
	Type       string // fully qualified type name
	Operations []*Operation
}

func (c *Component) Kind() Kind { return KindComponent }
func (c *Component) ID() string { return "component:" + c.Module + "/" + c.Type }

// SimpleName returns the type name without its package qualifier.
func (c *Component) SimpleName() string {
	if i := strings.LastIndexAny(c.Type, "./"); i >= 0 {
		return c.Type[i+1:]
	}
	return c.Type
}

// Operation is a callable unit of behavior on a component's type.
type Operation struct {
	Module     string
	Component  string // owning component type
	Name       string
	Signature  string // optional, distinguishes overloads
	Visibility Visibility
}

func (o *Operation) Kind() Kind { return KindOperation }

func (o *Operation) ID() string {
	id := "operation:" + o.Module + "/" + o.Component + "#" + o.Name
	if o.Signature != "" {
		id += "(" + o.Signature + ")"
	}
	return id
}

// IsPublic reports whether the operation may contribute documentation.
func (o *Operation) IsPublic() bool { return o.Visibility == VisibilityPublic }

// DisplayNameFor derives a human-readable name from a module name, treating
// '-', '_', '.' and whitespace as word separators.
func DisplayNameFor(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		switch r {
		case '-', '_', '.', ' ', '\t':
			return true
		}
		return false
	})
	caser := cases.Title(language.English)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
