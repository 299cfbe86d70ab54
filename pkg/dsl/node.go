package dsl

import (
	"fmt"

	"github.com/aretw0/strata/pkg/domain"
)

// NodeBuilder provides a fluent API for declaring a node.
type NodeBuilder struct {
	id       string
	kind     domain.Kind
	value    *int
	children []string
}

// Of sets the node kind.
func (n *NodeBuilder) Of(k domain.Kind) *NodeBuilder {
	n.kind = k
	return n
}

// A marks the node as an A.
func (n *NodeBuilder) A() *NodeBuilder { return n.Of(domain.KindA) }

// B marks the node as a B.
func (n *NodeBuilder) B() *NodeBuilder { return n.Of(domain.KindB) }

// C marks the node as a C.
func (n *NodeBuilder) C() *NodeBuilder { return n.Of(domain.KindC) }

// Value sets the kind's free field: a1, c1, ab1 or bc1.
func (n *NodeBuilder) Value(v int) *NodeBuilder {
	n.value = &v
	return n
}

// Owns appends children by id. On a C, calling Owns with no ids still makes c2 present.
func (n *NodeBuilder) Owns(ids ...string) *NodeBuilder {
	if n.children == nil {
		n.children = []string{}
	}
	n.children = append(n.children, ids...)
	return n
}

func (n *NodeBuilder) leaf() error {
	if len(n.children) > 0 {
		return fmt.Errorf("%w: %q is a %s and cannot own nodes", ErrInvalidTree, n.id, n.kind)
	}
	return nil
}
