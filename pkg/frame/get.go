package frame

import (
	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/facet"
)

// Get holds the field accessors. Each returns ok=false for an absent node, a node of
// another variant, or a field that is itself absent.
type Get interface {
	// V is the primary value of a node: a1 for A, b1 for B, c1 for C.
	V(n domain.Node) (int, bool)
	A1(n domain.Node) (int, bool)
	B1(n domain.Node) (int, bool)
	B2(n domain.Node) (*domain.A, bool)
	C1(n domain.Node) (int, bool)
	C2(n domain.Node) (*domain.Nodes[*domain.B], bool)
}

type getFacet struct{}

func (g getFacet) V(n domain.Node) (int, bool) {
	switch domain.TagOf(n) {
	case domain.KindA:
		return g.A1(n)
	case domain.KindB:
		return g.B1(n)
	case domain.KindC:
		return g.C1(n)
	}
	return 0, false
}

func (getFacet) A1(n domain.Node) (int, bool) {
	a, ok := domain.Narrow(domain.VariantA, n)
	if !ok {
		return 0, false
	}
	return a.A1, true
}

func (getFacet) B1(n domain.Node) (int, bool) {
	b, ok := domain.Narrow(domain.VariantB, n)
	if !ok {
		return 0, false
	}
	return b.B1(), true
}

func (getFacet) B2(n domain.Node) (*domain.A, bool) {
	b, ok := domain.Narrow(domain.VariantB, n)
	if !ok || b.B2() == nil {
		return nil, false
	}
	return b.B2(), true
}

func (getFacet) C1(n domain.Node) (int, bool) {
	c, ok := domain.Narrow(domain.VariantC, n)
	if !ok {
		return 0, false
	}
	return c.C1()
}

func (getFacet) C2(n domain.Node) (*domain.Nodes[*domain.B], bool) {
	c, ok := domain.Narrow(domain.VariantC, n)
	if !ok || c.C2() == nil {
		return nil, false
	}
	return c.C2(), true
}

// GetNamespace exposes get as the "get" namespace.
func GetNamespace(get Get) *facet.Namespace {
	return facet.NewNamespace(PathGet).
		Define("v", Accessor(get.V)).
		Define("a1", Accessor(get.A1)).
		Define("b1", Accessor(get.B1)).
		Define("b2", Accessor(get.B2)).
		Define("c1", Accessor(get.C1)).
		Define("c2", Accessor(get.C2))
}

// NewGet adds the "get" namespace on top of the predicates.
func NewGet(prev IsCapable) *GetFrame {
	get := getFacet{}
	return &GetFrame{
		Frame: prev.View().Extend(GetNamespace(get)),
		Is:    prev.Predicates(),
		Get:   get,
	}
}
