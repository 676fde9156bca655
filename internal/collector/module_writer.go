package collector

import (
	"fmt"
	"log/slog"
	"maps"

	"git.home.luguber.info/inful/moduledoc/internal/logfields"
	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

// ModuleFileName returns the artifact name of a module's document.
func ModuleFileName(moduleName string) string {
	return fmt.Sprintf("module-%s.adoc", moduleName)
}

// ModuleWriter appends fragments to their module's document. Each Write is an
// independent open/append/close.
type ModuleWriter struct {
	manager *output.Manager
	counts  map[string]int
	onWrite func(Fragment)
}

// NewModuleWriter returns a writer targeting m's output directory.
func NewModuleWriter(m *output.Manager) *ModuleWriter {
	return &ModuleWriter{manager: m, counts: make(map[string]int)}
}

// OnWrite registers a hook called after each successful append.
func (w *ModuleWriter) OnWrite(fn func(Fragment)) *ModuleWriter {
	w.onWrite = fn
	return w
}

// Reset removes every module's document so the first append of this run
// creates it afresh.
func (w *ModuleWriter) Reset(modules []*model.Module) error {
	for _, m := range modules {
		if err := w.manager.RemoveFile(ModuleFileName(m.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Write appends f.Text verbatim to the module's document.
func (w *ModuleWriter) Write(f Fragment) error {
	name := ModuleFileName(f.Module.Name)
	if err := w.manager.AppendFile(name, f.Text); err != nil {
		return err
	}
	w.counts[f.Module.Name]++
	slog.Debug("Appended fragment",
		logfields.Module(f.Module.Name),
		logfields.Level(string(f.Level)),
		logfields.Artifact(name))
	if w.onWrite != nil {
		w.onWrite(f)
	}
	return nil
}

// WriteAll walks modules and writes every fragment.
func (w *ModuleWriter) WriteAll(modules []*model.Module, lookup model.FragmentLookup) error {
	return Walk(modules, lookup, w.Write)
}

// Count returns the number of fragments written for a module.
func (w *ModuleWriter) Count(moduleName string) int {
	return w.counts[moduleName]
}

// Counts returns a copy of the per-module fragment counts.
func (w *ModuleWriter) Counts() map[string]int {
	return maps.Clone(w.counts)
}
