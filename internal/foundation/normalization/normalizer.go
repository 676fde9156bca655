// Package normalization maps loosely written configuration strings onto typed enum values.
package normalization

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Normalizer maps case- and whitespace-insensitive strings onto values of T.
type Normalizer[T comparable] struct {
	values       map[string]T
	defaultValue T
	keys         []string
}

// NewNormalizer creates a normalizer from raw key->value pairs; keys are folded
// the same way inputs are.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	folded := make(map[string]T, len(values))
	for k, v := range values {
		folded[fold(k)] = v
	}
	return &Normalizer[T]{
		values:       folded,
		defaultValue: defaultValue,
		keys:         slices.Sorted(maps.Keys(folded)),
	}
}

// Normalize returns the value for raw, or the default when raw is not recognized.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[fold(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// NormalizeWithError is Normalize but reports unrecognized input. Empty input
// yields the default without error.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	cleaned := fold(raw)
	if cleaned == "" {
		return n.defaultValue, nil
	}
	if v, ok := n.values[cleaned]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.keys)
}

// ValidKeys returns all accepted keys in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	return slices.Clone(n.keys)
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
