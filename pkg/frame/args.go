package frame

import (
	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/facet"
)

// Arg extracts args[i] as T. A missing or mistyped argument yields ok=false.
func Arg[T any](args []any, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(args) {
		return zero, false
	}
	v, ok := args[i].(T)
	return v, ok
}

// TagArg extracts args[i] as a tag. Plain ints are taken as Kind values.
func TagArg(args []any, i int) (domain.Tagged, bool) {
	if n, ok := Arg[int](args, i); ok {
		return domain.Kind(n), true
	}
	return Arg[domain.Tagged](args, i)
}

// Predicate wraps a typed predicate as a namespace method taking one Tagged argument.
func Predicate(fn func(domain.Tagged) bool) facet.Method {
	return func(_ *facet.Namespace, args ...any) any {
		t, _ := TagArg(args, 0)
		return fn(t)
	}
}

// NodePredicate wraps a predicate over nodes.
func NodePredicate(fn func(domain.Node) bool) facet.Method {
	return func(_ *facet.Namespace, args ...any) any {
		n, _ := Arg[domain.Node](args, 0)
		return fn(n)
	}
}

// Accessor wraps a typed accessor. The method returns nil when the accessor reports absent.
func Accessor[V any](fn func(domain.Node) (V, bool)) facet.Method {
	return func(_ *facet.Namespace, args ...any) any {
		n, _ := Arg[domain.Node](args, 0)
		v, ok := fn(n)
		if !ok {
			return nil
		}
		return v
	}
}
