package composite

import (
	"maps"
	"slices"

	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/facet"
	"github.com/aretw0/strata/pkg/frame"
	"github.com/aretw0/strata/pkg/registry"
)

// Step is the name reported to hooks for NewFrame.
const Step = "composite"

// Is widens the tag predicates with the composite kinds.
type Is interface {
	frame.Is
	AB(t domain.Tagged) bool
	BC(t domain.Tagged) bool
}

// Get widens the accessors. V additionally answers ab1 for AB and bc1 for BC.
type Get interface {
	frame.Get
	AB1(n domain.Node) (int, bool)
	BC1(n domain.Node) (int, bool)
}

// NodeIs widens the structural predicates.
type NodeIs interface {
	frame.NodeIs
	AB(t domain.Tagged) bool
	BC(t domain.Tagged) bool
	// Composite reports a node or tag beyond the base kinds.
	Composite(t domain.Tagged) bool
}

// NodeGet widens the structural accessors.
type NodeGet interface {
	frame.NodeGet
	AB1(n domain.Node) (int, bool)
	BC1(n domain.Node) (int, bool)
}

// Structure groups the widened node axis.
type Structure struct {
	Is  NodeIs
	Get NodeGet
}

// Frame is the stage produced by NewFrame.
// It satisfies frame.NodeCapable, so further steps can be layered on it.
type Frame struct {
	*frame.Frame
	Is   Is
	Get  Get
	Make frame.Make
	Node Structure
}

func (f *Frame) View() *frame.Frame { return f.Frame }
func (f *Frame) Predicates() frame.Is { return f.Is }
func (f *Frame) Accessors() frame.Get { return f.Get }
func (f *Frame) Factory() frame.Make { return f.Make }

func (f *Frame) Structure() frame.Structure {
	return frame.Structure{Is: f.Node.Is, Get: f.Node.Get}
}

var _ frame.NodeCapable = (*Frame)(nil)

type isFacet struct {
	frame.Is
}

func (isFacet) AB(t domain.Tagged) bool { return domain.TagOf(t) == domain.KindAB }
func (isFacet) BC(t domain.Tagged) bool { return domain.TagOf(t) == domain.KindBC }

type getFacet struct {
	frame.Get
}

func (g getFacet) V(n domain.Node) (int, bool) {
	switch domain.TagOf(n) {
	case domain.KindAB:
		return g.AB1(n)
	case domain.KindBC:
		return g.BC1(n)
	}
	return g.Get.V(n)
}

func (getFacet) AB1(n domain.Node) (int, bool) {
	ab, ok := domain.Narrow(VariantAB, n)
	if !ok {
		return 0, false
	}
	return ab.AB1, true
}

func (getFacet) BC1(n domain.Node) (int, bool) {
	bc, ok := domain.Narrow(VariantBC, n)
	if !ok {
		return 0, false
	}
	return bc.BC1, true
}

type makeFacet struct {
	frame.Make
	own *registry.Registry
}

func (m makeFacet) N(k domain.Kind) (domain.Node, bool) {
	if n, ok := m.own.New(k); ok {
		return n, true
	}
	return m.Make.N(k)
}

func (m makeFacet) Kinds() []domain.Kind {
	set := make(map[domain.Kind]struct{})
	for _, k := range m.Make.Kinds() {
		set[k] = struct{}{}
	}
	for _, k := range m.own.Kinds() {
		set[k] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

type nodeIs struct {
	frame.NodeIs
}

func (nodeIs) AB(t domain.Tagged) bool { return domain.TagOf(t) == domain.KindAB }
func (nodeIs) BC(t domain.Tagged) bool { return domain.TagOf(t) == domain.KindBC }

func (nodeIs) Composite(t domain.Tagged) bool {
	switch domain.TagOf(t) {
	case domain.KindAB, domain.KindBC, domain.KindABC:
		return true
	}
	return false
}

type nodeGet struct {
	frame.NodeGet
	get Get
}

func (g nodeGet) AB1(n domain.Node) (int, bool) { return g.get.AB1(n) }
func (g nodeGet) BC1(n domain.Node) (int, bool) { return g.get.BC1(n) }

func namespaces(is Is, get Get, mk frame.Make, node Structure) []*facet.Namespace {
	return []*facet.Namespace{
		facet.NewNamespace(frame.PathIs).
			Define("ab", frame.Predicate(is.AB)).
			Define("bc", frame.Predicate(is.BC)),
		facet.NewNamespace(frame.PathGet).
			Define("v", frame.Accessor(get.V)).
			Define("ab1", frame.Accessor(get.AB1)).
			Define("bc1", frame.Accessor(get.BC1)),
		// Redefined so make.n dispatches through the widened factory.
		frame.MakeNamespace(mk),
		facet.NewNamespace(frame.PathNodeIs).
			Define("ab", frame.Predicate(node.Is.AB)).
			Define("bc", frame.Predicate(node.Is.BC)).
			Define("composite", frame.Predicate(node.Is.Composite)),
		facet.NewNamespace(frame.PathNodeGet).
			Define("ab1", frame.Accessor(node.Get.AB1)).
			Define("bc1", frame.Accessor(node.Get.BC1)),
	}
}

// NewFrame is the composite chain step.
func NewFrame(prev frame.NodeCapable) *Frame {
	is := isFacet{Is: prev.Predicates()}
	get := getFacet{Get: prev.Accessors()}
	mk := makeFacet{Make: prev.Factory(), own: registry.NewRegistry(VariantAB, VariantBC)}
	structure := prev.Structure()
	node := Structure{
		Is:  nodeIs{NodeIs: structure.Is},
		Get: nodeGet{NodeGet: structure.Get, get: get},
	}

	return &Frame{
		Frame: prev.View().Extend(namespaces(is, get, mk, node)...),
		Is:    is,
		Get:   get,
		Make:  mk,
		Node:  node,
	}
}
