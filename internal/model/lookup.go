package model

// FragmentLookup resolves the documentation fragment attached to an entity.
// An entity carries at most one fragment; ok is false when none is attached.
type FragmentLookup interface {
	Fragment(e Entity) (text string, ok bool)
}

// MapLookup is a FragmentLookup keyed by entity identity. Two distinct
// entities never share a fragment, even when their IDs coincide (overloads
// without a signature, repeated component types).
type MapLookup map[Entity]string

// Fragment implements FragmentLookup.
func (l MapLookup) Fragment(e Entity) (string, bool) {
	text, ok := l[e]
	return text, ok
}

// Attach records text for e, replacing any previous fragment.
func (l MapLookup) Attach(e Entity, text string) {
	l[e] = text
}
