package composite

import (
	"testing"

	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T) (*frame.NodeFrame, *Frame) {
	t.Helper()
	prev := frame.Chain()
	return prev, NewFrame(prev)
}

func TestFrame_BasePredicatesUnchanged(t *testing.T) {
	prev, f := build(t)

	inputs := []domain.Tagged{
		domain.NewA(), domain.NewB(), domain.NewC(),
		domain.KindA, domain.KindB, domain.KindC, nil,
	}
	for _, in := range inputs {
		assert.Equal(t, prev.Is.A(in), f.Is.A(in))
		assert.Equal(t, prev.Is.B(in), f.Is.B(in))
		assert.Equal(t, prev.Is.C(in), f.Is.C(in))
	}
}

func TestFrame_CompositePredicates(t *testing.T) {
	_, f := build(t)
	ab := NewAB()
	bc := NewBC()

	assert.True(t, f.Is.AB(ab))
	assert.False(t, f.Is.AB(bc))
	assert.True(t, f.Is.BC(domain.KindBC))
	assert.False(t, f.Is.A(ab), "composite kinds are not base kinds")

	assert.True(t, f.Is.Kind(VariantAB, ab))
	assert.False(t, f.Is.Kind(domain.VariantA, ab))

	assert.True(t, f.Node.Is.AB(ab))
	assert.True(t, f.Node.Is.BC(bc))
	assert.True(t, f.Node.Is.Composite(ab))
	assert.True(t, f.Node.Is.Composite(domain.KindABC))
	assert.False(t, f.Node.Is.Composite(domain.Kind(99)), "undefined tags are not composite")
	assert.False(t, f.Node.Is.Composite(domain.KindUnknown))
	assert.False(t, f.Node.Is.Composite(domain.NewA()))
	assert.False(t, f.Node.Is.Base(ab))
	assert.True(t, f.Node.Is.Leaf(ab))
}

func TestFrame_WidenedAccessors(t *testing.T) {
	prev, f := build(t)
	ab := NewAB().Update(8)
	bc := NewBC().Update(9)

	v, ok := f.Get.V(ab)
	require.True(t, ok)
	assert.Equal(t, 8, v)

	v, ok = f.Get.V(bc)
	require.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = prev.Get.V(ab)
	assert.False(t, ok, "the earlier stage does not know AB")

	b := domain.NewB()
	v, ok = f.Get.V(b)
	require.True(t, ok)
	assert.Equal(t, domain.B1, v, "base variants keep their meaning")

	_, ok = f.Get.AB1(bc)
	assert.False(t, ok)

	v, ok = f.Node.Get.BC1(bc)
	require.True(t, ok)
	assert.Equal(t, 9, v)

	n2, ok := f.Node.Get.N2(ab)
	require.True(t, ok)
	assert.Equal(t, N2AB, n2)
}

func TestFrame_WidenedMake(t *testing.T) {
	_, f := build(t)

	for _, k := range []domain.Kind{domain.KindA, domain.KindB, domain.KindC, domain.KindAB, domain.KindBC} {
		n, ok := f.Make.N(k)
		require.True(t, ok, "make.n(%s)", k)
		assert.Equal(t, k, n.Tag())
	}

	_, ok := f.Make.N(domain.KindABC)
	assert.False(t, ok, "ABC is reserved")

	assert.Equal(t, []domain.Kind{domain.KindA, domain.KindB, domain.KindC, domain.KindAB, domain.KindBC}, f.Make.Kinds())
}

func TestFrame_NamespacesAreSupersets(t *testing.T) {
	prev, f := build(t)

	for _, path := range prev.Paths() {
		before, ok := prev.Namespace(path)
		require.True(t, ok)
		after, ok := f.Namespace(path)
		require.True(t, ok, "namespace %s is still reachable", path)

		for _, name := range before.Names() {
			assert.True(t, after.Has(name), "%s.%s survives the composite step", path, name)
		}
	}

	got, ok := f.Call(frame.PathIs, "a", domain.KindA)
	require.True(t, ok)
	assert.Equal(t, true, got)

	got, _ = f.Call(frame.PathIs, "ab", NewAB())
	assert.Equal(t, true, got)

	got, _ = f.Call(frame.PathGet, "v", NewBC().Update(3))
	assert.Equal(t, 3, got)

	got, _ = prev.Call(frame.PathGet, "v", NewBC().Update(3))
	assert.Nil(t, got)

	got, _ = f.Call(frame.PathMake, "n", domain.KindAB)
	n, isNode := got.(domain.Node)
	require.True(t, isNode)
	assert.Equal(t, domain.KindAB, n.Tag())

	got, _ = f.Call(frame.PathNodeIs, "leaf", domain.NewA())
	assert.Equal(t, true, got)

	got, _ = f.Call(frame.PathNodeGet, "ab1", NewAB().Update(5))
	assert.Equal(t, 5, got)
}

func TestFrame_SharesSession(t *testing.T) {
	prev, f := build(t)

	f.Session().SetFlip(false)
	v, set := prev.Session().Flip()
	assert.True(t, set)
	assert.False(t, v)
}

func TestFrame_UsableAsChainInput(t *testing.T) {
	_, f := build(t)

	// Re-applying the step keeps every capability reachable.
	again := NewFrame(f)
	assert.True(t, again.Is.AB(NewAB()))
	assert.True(t, again.Is.A(domain.NewA()))
	v, ok := again.Get.V(NewAB().Update(2))
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, f.Paths(), again.Paths())
}
