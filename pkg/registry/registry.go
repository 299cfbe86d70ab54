package registry

import (
	"maps"
	"slices"

	"github.com/aretw0/strata/pkg/domain"
)

// Registry maps tags to the constructors producing their default nodes.
// It is built during frame construction and read afterwards; it takes no locks.
type Registry struct {
	ctors map[domain.Kind]domain.Ctor
}

// NewRegistry creates a registry seeded with ctors.
func NewRegistry(ctors ...domain.Ctor) *Registry {
	r := &Registry{
		ctors: make(map[domain.Kind]domain.Ctor),
	}
	for _, c := range ctors {
		r.Register(c)
	}
	return r
}

// Register adds a constructor under its own tag.
// If the tag is already registered, it is overwritten.
func (r *Registry) Register(c domain.Ctor) {
	r.ctors[c.Kind()] = c
}

// Lookup returns the constructor registered for k.
func (r *Registry) Lookup(k domain.Kind) (domain.Ctor, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.ctors[k]
	return c, ok
}

// New constructs a default node of kind k.
// ok is false when no constructor is registered; callers treat that as their own error.
func (r *Registry) New(k domain.Kind) (domain.Node, bool) {
	c, ok := r.Lookup(k)
	if !ok {
		return nil, false
	}
	return c.New(), true
}

// Kinds lists registered tags in ascending order.
func (r *Registry) Kinds() []domain.Kind {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.ctors))
}

// Clone returns an independent copy, so later registrations do not leak backwards.
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	if r != nil {
		maps.Copy(out.ctors, r.ctors)
	}
	return out
}
