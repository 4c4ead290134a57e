package domain

import (
	"fmt"
	"strings"
)

// NameLookup resolves a source-specific country name to its canonical form.
// Implementations must be safe for concurrent reads and must not change
// their answers after construction.
type NameLookup interface {
	Lookup(name string) (CanonicalName, bool)
}

// LookupFunc adapts a plain function to NameLookup.
type LookupFunc func(name string) (CanonicalName, bool)

func (f LookupFunc) Lookup(name string) (CanonicalName, bool) { return f(name) }

// ChainLookup consults each lookup in order and returns the first match.
type ChainLookup []NameLookup

func (c ChainLookup) Lookup(name string) (CanonicalName, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if canonical, ok := l.Lookup(name); ok {
			return canonical, true
		}
	}
	return "", false
}

// Reconciler maps country names from the climate table and the geometry
// collection onto one canonical identity so the two can be joined.
type Reconciler struct {
	lookup NameLookup
}

// NewReconciler wraps a lookup source. The lookup is owned by the caller and
// shared read-only by every request.
func NewReconciler(lookup NameLookup) *Reconciler {
	return &Reconciler{lookup: lookup}
}

// Canonicalize returns the canonical name for name, or ErrUnknownCountry.
func (r *Reconciler) Canonicalize(name string) (CanonicalName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || r.lookup == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, name)
	}
	canonical, ok := r.lookup.Lookup(trimmed)
	if !ok || canonical == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, name)
	}
	return canonical, nil
}

// SameCountry reports whether two source names reconcile to the same
// canonical country. Unknown names never match, not even each other.
func (r *Reconciler) SameCountry(a, b string) bool {
	ca, err := r.Canonicalize(a)
	if err != nil {
		return false
	}
	cb, err := r.Canonicalize(b)
	if err != nil {
		return false
	}
	return ca == cb
}
