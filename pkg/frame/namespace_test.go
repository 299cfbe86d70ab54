package frame

import (
	"testing"

	"github.com/aretw0/strata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaces_MirrorTypedFacets(t *testing.T) {
	f := Chain()
	a, b, c := scenario(t, f)

	got, ok := f.Call(PathIs, "b", b)
	require.True(t, ok)
	assert.Equal(t, true, got)

	got, _ = f.Call(PathIs, "b", a)
	assert.Equal(t, false, got)

	got, _ = f.Call(PathIs, "a", domain.KindA)
	assert.Equal(t, true, got, "bare tags are accepted")

	got, _ = f.Call(PathIs, "a", 1)
	assert.Equal(t, true, got, "plain ints are compared as tags")

	got, _ = f.Call(PathIs, "b", 1)
	assert.Equal(t, false, got)

	got, _ = f.Call(PathIs, "kind", domain.VariantC, c)
	assert.Equal(t, true, got)

	got, _ = f.Call(PathIs, "kind", domain.VariantC)
	assert.Equal(t, false, got, "a missing node is not an error")

	got, _ = f.Call(PathGet, "v", b)
	assert.Equal(t, 567, got)

	got, ok = f.Call(PathGet, "c1", a)
	require.True(t, ok)
	assert.Nil(t, got, "mismatched accessors return nil")

	got, _ = f.Call(PathGet, "v", "not a node")
	assert.Nil(t, got)
}

func TestNamespaces_Make(t *testing.T) {
	f := Chain()

	got, ok := f.Call(PathMake, "n", domain.KindB)
	require.True(t, ok)
	n, isNode := got.(domain.Node)
	require.True(t, isNode)
	assert.Equal(t, domain.KindB, n.Tag())

	got, _ = f.Call(PathMake, "n", 1)
	n, isNode = got.(domain.Node)
	require.True(t, isNode, "plain ints are accepted as tags")
	assert.Equal(t, domain.KindA, n.Tag())

	got, _ = f.Call(PathMake, "n", domain.KindABC)
	assert.Nil(t, got)

	got, _ = f.Call(PathMake, "n", "A")
	assert.Nil(t, got)
}

func TestNamespaces_NodeWalk(t *testing.T) {
	f := Chain()
	a := domain.NewA().Update(4)

	got, ok := f.Call(PathNode, "walk", a, func(n domain.Node) any { return n.N1() })
	require.True(t, ok)
	assert.Equal(t, domain.N1A, got)

	got, _ = f.Call(PathNode, "walk", a, domain.Visitor(func(domain.Node) any { return "visited" }))
	assert.Equal(t, "visited", got)

	got, _ = f.Call(PathNode, "walk", a)
	assert.Nil(t, got)

	got, _ = f.Call(PathNodeGet, "children", domain.NewB().Update(a))
	assert.Equal(t, []domain.Node{a}, got)

	got, _ = f.Call(PathNodeIs, "base", domain.KindB)
	assert.Equal(t, true, got)
}

func TestChain_HooksAndFlip(t *testing.T) {
	var steps []string
	f := Chain(
		WithFlip(true),
		WithLogger(nil),
		WithHooks(Hooks{OnStep: func(step string, _ *Frame) {
			steps = append(steps, step)
		}}),
		WithHooks(Hooks{}),
	)

	assert.Equal(t, []string{StepIs, StepGet, StepMake, StepNode}, steps)
	v, set := f.Session().Flip()
	assert.True(t, set)
	assert.True(t, v)
}
