package composite

import "github.com/aretw0/strata/pkg/domain"

// Per-type identifying values and the constants reported by n2.
const (
	N1AB = 400
	N1BC = 500

	N2AB = 12
	N2BC = 23
)

// AB extends the base node shape with ab1.
type AB struct {
	domain.Header
	AB1 int
}

// NewAB returns an AB with default field values.
func NewAB() *AB {
	return &AB{Header: domain.NewHeader(domain.KindAB)}
}

func (n *AB) N1() int { return N1AB }

func (n *AB) N2() (int, bool) { return N2AB, true }

func (n *AB) Walk(v domain.Visitor) any { return v(n) }

// Update sets ab1.
func (n *AB) Update(ab1 int) *AB {
	n.AB1 = ab1
	return n
}

// BC extends the base node shape with bc1.
type BC struct {
	domain.Header
	BC1 int
}

// NewBC returns a BC with default field values.
func NewBC() *BC {
	return &BC{Header: domain.NewHeader(domain.KindBC)}
}

func (n *BC) N1() int { return N1BC }

func (n *BC) N2() (int, bool) { return N2BC, true }

func (n *BC) Walk(v domain.Visitor) any { return v(n) }

// Update sets bc1.
func (n *BC) Update(bc1 int) *BC {
	n.BC1 = bc1
	return n
}

// Variant descriptors for the composite kinds. KindABC stays without one.
var (
	VariantAB = domain.NewVariant(domain.KindAB, NewAB)
	VariantBC = domain.NewVariant(domain.KindBC, NewBC)
)
