package composite

import (
	"testing"

	"github.com/aretw0/strata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite_SatisfiesNode(t *testing.T) {
	nodes := []domain.Node{NewAB(), NewBC()}

	assert.Equal(t, domain.KindAB, nodes[0].Tag())
	assert.Equal(t, domain.KindBC, nodes[1].Tag())
}

func TestComposite_N2Constant(t *testing.T) {
	ab := NewAB().Update(99)
	n2, ok := ab.N2()
	require.True(t, ok)
	assert.Equal(t, N2AB, n2, "n2 does not depend on ab1")

	n2, ok = NewBC().N2()
	require.True(t, ok)
	assert.Equal(t, N2BC, n2)

	assert.Equal(t, N1AB, ab.N1())
	assert.Equal(t, N1BC, NewBC().N1())
}

func TestComposite_Narrow(t *testing.T) {
	bc := VariantBC.New()

	got, ok := domain.Narrow(VariantBC, bc)
	require.True(t, ok)
	assert.Zero(t, got.BC1)

	_, ok = domain.Narrow(VariantAB, bc)
	assert.False(t, ok)
}

func TestComposite_InCollection(t *testing.T) {
	ns := domain.NewNodes[domain.Node](NewAB().Update(1), domain.NewA(), NewBC().Update(2))

	got := ns.FindFirst(func(n domain.Node) any {
		if bc, ok := domain.Narrow(VariantBC, n); ok {
			return bc.BC1
		}
		return nil
	})
	assert.Equal(t, 2, got)
}
