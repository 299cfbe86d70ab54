package frame

import (
	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/facet"
)

// NodeIs holds structural predicates, independent of any particular variant.
type NodeIs interface {
	// Leaf reports a present node owning no children.
	Leaf(n domain.Node) bool
	// Computed reports a present node whose n2 is not absent.
	Computed(n domain.Node) bool
	// Base reports a node or tag among A, B and C.
	Base(t domain.Tagged) bool
}

// NodeGet holds structural accessors.
type NodeGet interface {
	N1(n domain.Node) (int, bool)
	N2(n domain.Node) (int, bool)
	Kind(n domain.Node) (domain.Kind, bool)
	// Children lists owned nodes in order: b2 for B, the elements of c2 for C.
	Children(n domain.Node) []domain.Node
}

// Structure groups the facets of the "node" axis.
type Structure struct {
	Is  NodeIs
	Get NodeGet
}

type nodeIs struct {
	get NodeGet
}

func (s nodeIs) Leaf(n domain.Node) bool {
	return !domain.Absent(n) && len(s.get.Children(n)) == 0
}

func (nodeIs) Computed(n domain.Node) bool {
	if domain.Absent(n) {
		return false
	}
	_, ok := n.N2()
	return ok
}

func (nodeIs) Base(t domain.Tagged) bool {
	return domain.TagOf(t).IsBase()
}

type nodeGet struct{}

func (nodeGet) N1(n domain.Node) (int, bool) {
	if domain.Absent(n) {
		return 0, false
	}
	return n.N1(), true
}

func (nodeGet) N2(n domain.Node) (int, bool) {
	if domain.Absent(n) {
		return 0, false
	}
	return n.N2()
}

func (nodeGet) Kind(n domain.Node) (domain.Kind, bool) {
	if domain.Absent(n) {
		return domain.KindUnknown, false
	}
	return n.Tag(), true
}

func (nodeGet) Children(n domain.Node) []domain.Node {
	if b, ok := domain.Narrow(domain.VariantB, n); ok {
		if b.B2() == nil {
			return nil
		}
		return []domain.Node{b.B2()}
	}
	if c, ok := domain.Narrow(domain.VariantC, n); ok {
		var out []domain.Node
		for _, b := range c.C2().All() {
			out = append(out, b)
		}
		return out
	}
	return nil
}

// NodeNamespaces exposes s as the "node", "node.is" and "node.get" namespaces.
// "node" itself carries walk(n, visitor).
func NodeNamespaces(s Structure) []*facet.Namespace {
	walk := facet.NewNamespace(PathNode).
		Define("walk", facet.Method(func(_ *facet.Namespace, args ...any) any {
			n, ok := Arg[domain.Node](args, 0)
			if !ok || domain.Absent(n) {
				return nil
			}
			v, ok := Arg[domain.Visitor](args, 1)
			if !ok {
				fn, isFunc := Arg[func(domain.Node) any](args, 1)
				if !isFunc {
					return nil
				}
				v = fn
			}
			return n.Walk(v)
		}))
	is := facet.NewNamespace(PathNodeIs).
		Define("leaf", NodePredicate(s.Is.Leaf)).
		Define("computed", NodePredicate(s.Is.Computed)).
		Define("base", Predicate(s.Is.Base))
	get := facet.NewNamespace(PathNodeGet).
		Define("n1", Accessor(s.Get.N1)).
		Define("n2", Accessor(s.Get.N2)).
		Define("kind", Accessor(s.Get.Kind)).
		Define("children", facet.Method(func(_ *facet.Namespace, args ...any) any {
			n, _ := Arg[domain.Node](args, 0)
			return s.Get.Children(n)
		}))
	return []*facet.Namespace{walk, is, get}
}

// NewNode adds the node axis. It touches only the "node" namespaces, so it can be layered
// without affecting is, get or make.
func NewNode(prev MakeCapable) *NodeFrame {
	get := nodeGet{}
	s := Structure{Is: nodeIs{get: get}, Get: get}
	return &NodeFrame{
		Frame: prev.View().Extend(NodeNamespaces(s)...),
		Is:    prev.Predicates(),
		Get:   prev.Accessors(),
		Make:  prev.Factory(),
		Node:  s,
	}
}
