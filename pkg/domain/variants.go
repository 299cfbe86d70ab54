package domain

// Per-type identifying values.
const (
	N1A = 100
	N1B = 200
	N1C = 300

	// B1 is the fixed b1 value of every B.
	B1 = 567
)

// A is the leaf variant.
type A struct {
	Header
	A1 int
}

// NewA returns an A with default field values.
func NewA() *A {
	return &A{Header: NewHeader(KindA)}
}

func (a *A) N1() int { return N1A }

// N2 is absent for A.
func (a *A) N2() (int, bool) { return 0, false }

func (a *A) Walk(v Visitor) any { return v(a) }

// Update sets a1. The value is taken as given.
func (a *A) Update(a1 int) *A {
	a.A1 = a1
	return a
}

// B references exactly one A.
type B struct {
	Header
	b2 *A
}

// NewB returns a B with no A attached yet.
func NewB() *B {
	return &B{Header: NewHeader(KindB)}
}

func (b *B) N1() int { return N1B }

// N2 is b1 plus the attached A's a1, or absent while no A is attached.
func (b *B) N2() (int, bool) {
	if b.b2 == nil {
		return 0, false
	}
	return B1 + b.b2.A1, true
}

func (b *B) Walk(v Visitor) any { return v(b) }

// B1 is constant for every B.
func (b *B) B1() int { return B1 }

// B2 returns the attached A, which may be nil.
func (b *B) B2() *A { return b.b2 }

// Update attaches a.
func (b *B) Update(a *A) *B {
	b.b2 = a
	return b
}

// C owns an optional collection of B.
type C struct {
	Header
	c1 *int
	c2 *Nodes[*B]
}

// NewC returns a C with both fields absent.
func NewC() *C {
	return &C{Header: NewHeader(KindC)}
}

func (c *C) N1() int { return N1C }

// N2 is the size of c2, or absent while c2 is.
func (c *C) N2() (int, bool) {
	if c.c2 == nil {
		return 0, false
	}
	return c.c2.Len(), true
}

func (c *C) Walk(v Visitor) any { return v(c) }

// C1 returns the free-form value and whether it is set.
func (c *C) C1() (int, bool) {
	if c.c1 == nil {
		return 0, false
	}
	return *c.c1, true
}

// SetC1 sets the free-form value.
func (c *C) SetC1(v int) *C {
	c.c1 = &v
	return c
}

// ClearC1 makes c1 absent again.
func (c *C) ClearC1() *C {
	c.c1 = nil
	return c
}

// C2 returns the owned collection, which may be nil.
func (c *C) C2() *Nodes[*B] { return c.c2 }

// Update replaces c2 with a new collection holding bs in order.
func (c *C) Update(bs ...*B) *C {
	c.c2 = NewNodes(bs...)
	return c
}
