package domain

import "iter"

// Nodes is an ordered sequence of nodes of one declared element type.
// Insertion order is significant. Homogeneity is guaranteed by T, not re-validated.
type Nodes[T Node] struct {
	items []T

	// NS1 is a free counter carried with the collection.
	NS1 int
}

// NewNodes builds a collection holding items in the given order.
func NewNodes[T Node](items ...T) *Nodes[T] {
	return &Nodes[T]{items: append([]T(nil), items...)}
}

// Append adds items at the end.
func (ns *Nodes[T]) Append(items ...T) *Nodes[T] {
	ns.items = append(ns.items, items...)
	return ns
}

// Len is safe on a nil collection.
func (ns *Nodes[T]) Len() int {
	if ns == nil {
		return 0
	}
	return len(ns.items)
}

// At returns the element at i, or false when i is out of range.
func (ns *Nodes[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= ns.Len() {
		return zero, false
	}
	return ns.items[i], true
}

// All iterates elements in insertion order.
func (ns *Nodes[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < ns.Len(); i++ {
			if !yield(i, ns.items[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements.
func (ns *Nodes[T]) Slice() []T {
	if ns == nil {
		return nil
	}
	return append([]T(nil), ns.items...)
}

// FindFirst calls fn on each element in order and returns the first truthy result.
// It returns nil when no call yields a truthy result.
func (ns *Nodes[T]) FindFirst(fn func(T) any) any {
	for _, item := range ns.All() {
		if res := fn(item); Truthy(res) {
			return res
		}
	}
	return nil
}

// ReduceAll calls fn exactly once with the whole collection.
func (ns *Nodes[T]) ReduceAll(fn func(*Nodes[T]) any) any {
	return fn(ns)
}

// Walk keeps the two traversal modes behind one call.
// A non-nil perCollection takes precedence and perElement is never invoked.
func (ns *Nodes[T]) Walk(perElement func(T) any, perCollection func(*Nodes[T]) any) any {
	if perCollection != nil {
		return ns.ReduceAll(perCollection)
	}
	if perElement == nil {
		return nil
	}
	return ns.FindFirst(perElement)
}
