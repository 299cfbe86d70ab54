package frame

import (
	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/facet"
	"github.com/aretw0/strata/pkg/registry"
)

// Make constructs default nodes by tag.
type Make interface {
	// N returns a fresh node of kind k, or ok=false when no constructor is known for k.
	N(k domain.Kind) (domain.Node, bool)
	// Kinds lists the tags N can construct.
	Kinds() []domain.Kind
}

type makeFacet struct {
	reg *registry.Registry
}

// NewMakeFacet returns a Make backed by the given constructors.
func NewMakeFacet(ctors ...domain.Ctor) Make {
	return makeFacet{reg: registry.NewRegistry(ctors...)}
}

func (m makeFacet) N(k domain.Kind) (domain.Node, bool) { return m.reg.New(k) }

func (m makeFacet) Kinds() []domain.Kind { return m.reg.Kinds() }

// MakeNamespace exposes mk as the "make" namespace.
func MakeNamespace(mk Make) *facet.Namespace {
	return facet.NewNamespace(PathMake).
		Define("n", facet.Method(func(_ *facet.Namespace, args ...any) any {
			t, _ := TagArg(args, 0)
			n, ok := mk.N(domain.TagOf(t))
			if !ok {
				return nil
			}
			return n
		}))
}

// NewMake adds the "make" namespace for the base variants.
func NewMake(prev GetCapable) *MakeFrame {
	mk := NewMakeFacet(domain.VariantA, domain.VariantB, domain.VariantC)
	return &MakeFrame{
		Frame: prev.View().Extend(MakeNamespace(mk)),
		Is:    prev.Predicates(),
		Get:   prev.Accessors(),
		Make:  mk,
	}
}
