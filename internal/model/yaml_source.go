package model

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

// yamlModel is the on-disk shape of a model file. A nil Doc means no fragment
// is attached; an empty string is a fragment with no text.
type yamlModel struct {
	Application string       `yaml:"application"`
	Modules     []yamlModule `yaml:"modules"`
}

type yamlModule struct {
	Name        string          `yaml:"name"`
	DisplayName string          `yaml:"display_name,omitempty"`
	Doc         *string         `yaml:"doc,omitempty"`
	Components  []yamlComponent `yaml:"components,omitempty"`
}

type yamlComponent struct {
	Type       string          `yaml:"type"`
	Doc        *string         `yaml:"doc,omitempty"`
	Operations []yamlOperation `yaml:"operations,omitempty"`
}

type yamlOperation struct {
	Name       string  `yaml:"name"`
	Signature  string  `yaml:"signature,omitempty"`
	Visibility string  `yaml:"visibility,omitempty"`
	Doc        *string `yaml:"doc,omitempty"`
}

// YAMLSource loads the model from a YAML file, as exported by a discovery
// tool. Unknown fields are rejected so typos do not silently drop fragments.
type YAMLSource struct {
	Path string
}

// NewYAMLSource returns a Source reading path on every Load.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{Path: path}
}

// Load implements Source.
func (s *YAMLSource) Load(_ context.Context) (*Application, FragmentLookup, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, nil, ferrors.IOFailure("read", s.Path, err)
	}
	app, lookup, err := ParseYAML(data)
	if err != nil {
		if classified, ok := ferrors.AsClassified(err); ok {
			return nil, nil, classified.WithContext("path", s.Path)
		}
		return nil, nil, err
	}
	return app, lookup, nil
}

// ParseYAML decodes a model document.
func ParseYAML(data []byte) (*Application, FragmentLookup, error) {
	var raw yamlModel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, ferrors.WrapError(err, ferrors.CategoryModel, "failed to decode model").Fatal().Build()
	}

	app := &Application{Name: raw.Application, Modules: make([]*Module, 0, len(raw.Modules))}
	lookup := MapLookup{}

	for _, rm := range raw.Modules {
		m := &Module{Name: rm.Name, DisplayName: rm.DisplayName}
		if m.DisplayName == "" {
			m.DisplayName = DisplayNameFor(m.Name)
		}
		if rm.Doc != nil {
			lookup.Attach(m, *rm.Doc)
		}

		for _, rc := range rm.Components {
			if rc.Type == "" {
				return nil, nil, ferrors.ModelError("component has no type").WithContext("module", m.Name).Build()
			}
			c := &Component{Module: m.Name, Type: rc.Type}
			if rc.Doc != nil {
				lookup.Attach(c, *rc.Doc)
			}

			for _, ro := range rc.Operations {
				vis, err := ParseVisibility(ro.Visibility)
				if err != nil {
					return nil, nil, ferrors.WrapError(err, ferrors.CategoryModel, "invalid operation visibility").
						Fatal().
						WithContext("module", m.Name).
						WithContext("operation", fmt.Sprintf("%s#%s", rc.Type, ro.Name)).
						Build()
				}
				o := &Operation{
					Module:     m.Name,
					Component:  c.Type,
					Name:       ro.Name,
					Signature:  ro.Signature,
					Visibility: vis,
				}
				if ro.Doc != nil {
					lookup.Attach(o, *ro.Doc)
				}
				c.Operations = append(c.Operations, o)
			}
			m.Components = append(m.Components, c)
		}
		app.Modules = append(app.Modules, m)
	}

	if err := Validate(app); err != nil {
		return nil, nil, err
	}
	return app, lookup, nil
}
