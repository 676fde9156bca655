// Package collector walks the module model and yields documentation fragments
// in the order they must appear in each module's document, and appends them
// to the per-module output files.
package collector

import (
	"git.home.luguber.info/inful/moduledoc/internal/model"
)

// Fragment is one piece of author-supplied markup bound for a module's document.
type Fragment struct {
	Module *model.Module
	Level  model.Kind
	Source model.Entity
	Text   string
}

// Visitor receives fragments in discovery order. Returning an error stops the walk.
type Visitor func(Fragment) error

// Walk visits, for each module in order: the module's own fragment, then for
// each component its fragment followed by the fragments of its public
// operations. Operations are visited even when their component has no
// fragment. Entities without a fragment and non-public operations are skipped.
func Walk(modules []*model.Module, lookup model.FragmentLookup, visit Visitor) error {
	for _, m := range modules {
		if err := walkModule(m, lookup, visit); err != nil {
			return err
		}
	}
	return nil
}

func walkModule(m *model.Module, lookup model.FragmentLookup, visit Visitor) error {
	if err := emit(m, m, lookup, visit); err != nil {
		return err
	}
	for _, c := range m.Components {
		if err := emit(m, c, lookup, visit); err != nil {
			return err
		}
		for _, op := range c.Operations {
			if !op.IsPublic() {
				continue
			}
			if err := emit(m, op, lookup, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

func emit(m *model.Module, e model.Entity, lookup model.FragmentLookup, visit Visitor) error {
	text, ok := lookup.Fragment(e)
	if !ok {
		return nil
	}
	return visit(Fragment{Module: m, Level: e.Kind(), Source: e, Text: text})
}

// Collect returns all fragments Walk would visit. Intended for inspection
// and dry runs; writers should use Walk so nothing is buffered.
func Collect(modules []*model.Module, lookup model.FragmentLookup) []Fragment {
	var out []Fragment
	_ = Walk(modules, lookup, func(f Fragment) error {
		out = append(out, f)
		return nil
	})
	return out
}
