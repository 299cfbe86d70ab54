package domain

// Ctor associates a tag with the constructor of its default node.
type Ctor interface {
	Kind() Kind
	New() Node
}

// Variant is the typed constructor descriptor for nodes of type N.
type Variant[N Node] struct {
	kind Kind
	ctor func() N
}

// NewVariant describes a variant. Packages adding composite kinds use it for their descriptors.
func NewVariant[N Node](k Kind, ctor func() N) Variant[N] {
	return Variant[N]{kind: k, ctor: ctor}
}

func (v Variant[N]) Kind() Kind { return v.kind }

// New returns a freshly constructed node with default field values.
func (v Variant[N]) New() Node { return v.ctor() }

// Make is New without losing the concrete type.
func (v Variant[N]) Make() N { return v.ctor() }

// Base variant descriptors.
var (
	VariantA = NewVariant(KindA, NewA)
	VariantB = NewVariant(KindB, NewB)
	VariantC = NewVariant(KindC, NewC)
)

// Narrow is the type-narrowing form of a kind check: it returns n as N when
// n is present and carries v's tag.
func Narrow[N Node](v Variant[N], n Node) (N, bool) {
	var zero N
	if Absent(n) || n.Tag() != v.kind {
		return zero, false
	}
	typed, ok := n.(N)
	return typed, ok
}
