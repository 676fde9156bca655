// Package model holds the application model consumed by the documentation
// engine: modules, their components and the operations of each component's
// type. The model is supplied wholesale by a discovery collaborator (a Source)
// at the start of a run and is treated as immutable afterwards.
//
// Documentation fragments are not stored on the entities themselves. They are
// resolved through a FragmentLookup, which keeps the engine independent of how
// the collaborator discovered them.
package model
