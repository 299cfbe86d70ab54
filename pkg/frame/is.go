package frame

import (
	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/facet"
)

// Is holds the tag predicates.
type Is interface {
	// Kind reports whether n is present and carries c's tag.
	Kind(c domain.Ctor, n domain.Node) bool
	// A, B and C accept a node or a bare tag.
	A(t domain.Tagged) bool
	B(t domain.Tagged) bool
	C(t domain.Tagged) bool
}

type isFacet struct{}

func (isFacet) Kind(c domain.Ctor, n domain.Node) bool {
	if c == nil || domain.Absent(n) {
		return false
	}
	return n.Tag() == c.Kind()
}

func (isFacet) A(t domain.Tagged) bool { return domain.TagOf(t) == domain.KindA }
func (isFacet) B(t domain.Tagged) bool { return domain.TagOf(t) == domain.KindB }
func (isFacet) C(t domain.Tagged) bool { return domain.TagOf(t) == domain.KindC }

// IsNamespace exposes is as the "is" namespace.
func IsNamespace(is Is) *facet.Namespace {
	return facet.NewNamespace(PathIs).
		Define("kind", facet.Method(func(_ *facet.Namespace, args ...any) any {
			c, _ := Arg[domain.Ctor](args, 0)
			n, _ := Arg[domain.Node](args, 1)
			return is.Kind(c, n)
		})).
		Define("a", Predicate(is.A)).
		Define("b", Predicate(is.B)).
		Define("c", Predicate(is.C))
}

// NewIs is the first chain step. It adds the "is" namespace.
func NewIs(f *Frame) *IsFrame {
	is := isFacet{}
	return &IsFrame{
		Frame: f.Extend(IsNamespace(is)),
		Is:    is,
	}
}
