package frame

import (
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/strata/pkg/facet"
)

// Namespace paths registered by the steps of this package.
const (
	PathIs      = "is"
	PathGet     = "get"
	PathMake    = "make"
	PathNode    = "node"
	PathNodeIs  = "node.is"
	PathNodeGet = "node.get"
)

// Frame is the view of facet namespaces at one stage of a chain.
// A Frame is not modified after the step creating it returns.
type Frame struct {
	session *Session
	spaces  map[string]*facet.Namespace
	order   []string
}

// New creates the empty base frame and its session.
func New() *Frame {
	return &Frame{
		session: &Session{},
		spaces:  make(map[string]*facet.Namespace),
	}
}

// Session returns the state shared with every stage derived from the same base.
func (f *Frame) Session() *Session {
	return f.session
}

// Namespace returns the namespace registered under path.
func (f *Frame) Namespace(path string) (*facet.Namespace, bool) {
	ns, ok := f.spaces[path]
	return ns, ok
}

// Paths lists namespace paths in the order they first appeared in the chain.
func (f *Frame) Paths() []string {
	return slices.Clone(f.order)
}

// Group lists the nested paths under prefix, e.g. Group("node") -> ["node.is", "node.get"].
func (f *Frame) Group(prefix string) []string {
	var out []string
	for _, p := range f.order {
		if strings.HasPrefix(p, prefix+".") {
			out = append(out, p)
		}
	}
	return out
}

// Call invokes member name of the namespace at path.
// ok is false when either the namespace or the method is missing.
func (f *Frame) Call(path, name string, args ...any) (any, bool) {
	ns, ok := f.Namespace(path)
	if !ok {
		return nil, false
	}
	return ns.Call(name, args...)
}

// Extend returns the next stage's frame. Each given namespace first receives the members of
// the namespace it replaces (facet.Merge), so it is a superset of it; members defined
// directly on the new namespace win. The receiver is left unchanged and the session is shared.
func (f *Frame) Extend(spaces ...*facet.Namespace) *Frame {
	next := &Frame{
		session: f.session,
		spaces:  maps.Clone(f.spaces),
		order:   slices.Clone(f.order),
	}
	for _, ns := range spaces {
		prev, seen := next.spaces[ns.Path()]
		facet.Merge(ns, prev)
		if !seen {
			next.order = append(next.order, ns.Path())
		}
		next.spaces[ns.Path()] = ns
	}
	return next
}
