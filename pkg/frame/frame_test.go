package frame

import (
	"testing"

	"github.com/aretw0/strata/pkg/facet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_ExtendLeavesPreviousStageIntact(t *testing.T) {
	base := New()
	is := NewIs(base)
	get := NewGet(is)

	assert.Empty(t, base.Paths())
	assert.Equal(t, []string{PathIs}, is.Paths())
	assert.Equal(t, []string{PathIs, PathGet}, get.Paths())

	_, ok := is.Namespace(PathGet)
	assert.False(t, ok, "the earlier stage does not see later namespaces")
}

func TestFrame_SessionIsShared(t *testing.T) {
	base := New()
	full := NewNode(NewMake(NewGet(NewIs(base))))

	_, set := base.Session().Flip()
	assert.False(t, set)

	full.Session().SetFlip(true)
	v, set := base.Session().Flip()
	assert.True(t, set)
	assert.True(t, v)

	base.Session().ClearFlip()
	_, set = full.Session().Flip()
	assert.False(t, set)
}

func TestFrame_ExtendMergesSamePath(t *testing.T) {
	first := New().Extend(facet.NewNamespace("is").
		Define("a", facet.Method(func(*facet.Namespace, ...any) any { return "first.a" })).
		Define("b", facet.Method(func(*facet.Namespace, ...any) any { return "first.b" })))

	second := first.Extend(facet.NewNamespace("is").
		Define("b", facet.Method(func(*facet.Namespace, ...any) any { return "second.b" })).
		Define("c", facet.Method(func(*facet.Namespace, ...any) any { return "second.c" })))

	a, ok := second.Call("is", "a")
	require.True(t, ok)
	assert.Equal(t, "first.a", a, "members of the replaced namespace are carried over")

	b, _ := second.Call("is", "b")
	assert.Equal(t, "second.b", b, "direct definitions win")

	b, _ = first.Call("is", "b")
	assert.Equal(t, "first.b", b)

	_, ok = first.Call("is", "c")
	assert.False(t, ok)

	assert.Equal(t, []string{"is"}, second.Paths())
}

func TestFrame_CallMissing(t *testing.T) {
	f := Chain()

	_, ok := f.Call("nope", "a")
	assert.False(t, ok)

	_, ok = f.Call(PathIs, "nope")
	assert.False(t, ok)
}

func TestFrame_Group(t *testing.T) {
	f := Chain()

	assert.Equal(t, []string{PathNodeIs, PathNodeGet}, f.Group(PathNode))
	assert.Empty(t, f.Group(PathIs))
	assert.Equal(t, []string{PathIs, PathGet, PathMake, PathNode, PathNodeIs, PathNodeGet}, f.Paths())
}
