package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespace_Order(t *testing.T) {
	ns := NewNamespace("is").
		Define("c", constant(3)).
		Define("a", constant(1)).
		Define("b", constant(2))

	assert.Equal(t, []string{"c", "a", "b"}, ns.Names())

	// Redefinition keeps the original position.
	ns.Define("c", constant(30))
	assert.Equal(t, []string{"c", "a", "b"}, ns.Names())
	got, _ := ns.Call("c")
	assert.Equal(t, 30, got)
}

func TestNamespace_MissingMembers(t *testing.T) {
	ns := NewNamespace("get").Set("flag", true)

	_, ok := ns.Call("missing")
	assert.False(t, ok)

	_, ok = ns.Call("flag")
	assert.False(t, ok, "fields are not callable")

	_, ok = ns.Method("flag")
	assert.False(t, ok)

	_, ok = ns.Field("missing")
	assert.False(t, ok)
}

func TestNamespace_NilSafe(t *testing.T) {
	var ns *Namespace

	assert.Equal(t, "", ns.Path())
	assert.Equal(t, 0, ns.Len())
	assert.Nil(t, ns.Names())
	assert.False(t, ns.Has("a"))
	assert.False(t, ns.Direct("a"))
	_, ok := ns.Call("a")
	assert.False(t, ok)
}

func TestNamespace_CallPassesArgs(t *testing.T) {
	ns := NewNamespace("math").Define("sum", Method(func(_ *Namespace, args ...any) any {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total
	}))

	got, ok := ns.Call("sum", 1, 2, 3)
	assert.True(t, ok)
	assert.Equal(t, 6, got)
}
