package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/strata/pkg/composite"
	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/frame"
)

var (
	// ErrUnknownNode is returned when an id is referenced but never added.
	ErrUnknownNode = errors.New("unknown node")
	// ErrInvalidTree is returned when the declared ownership cannot form a tree of the given kinds.
	ErrInvalidTree = errors.New("invalid tree")
)

// Builder manages the tree declaration.
type Builder struct {
	nodes map[string]*NodeBuilder
}

// New creates a new tree builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add declares a node.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{id: id}
	b.nodes[id] = nb
	return nb
}

// Build instantiates the tree rooted at root using the make facet of stage.
func (b *Builder) Build(stage frame.MakeCapable, root string) (domain.Node, error) {
	return b.build(stage.Factory(), root, make(map[string]bool))
}

func (b *Builder) build(mk frame.Make, id string, path map[string]bool) (domain.Node, error) {
	nb, ok := b.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	if path[id] {
		return nil, fmt.Errorf("%w: %q owns itself", ErrInvalidTree, id)
	}
	path[id] = true
	defer delete(path, id)

	n, ok := mk.N(nb.kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q has kind %s, which the stage cannot make", ErrInvalidTree, id, nb.kind)
	}

	children := make([]domain.Node, 0, len(nb.children))
	for _, cid := range nb.children {
		child, err := b.build(mk, cid, path)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if err := apply(n, nb, children); err != nil {
		return nil, err
	}
	return n, nil
}

// apply writes the declared value and children onto a freshly made node.
func apply(n domain.Node, nb *NodeBuilder, children []domain.Node) error {
	switch nb.kind {
	case domain.KindA:
		a, _ := domain.Narrow(domain.VariantA, n)
		if err := nb.leaf(); err != nil {
			return err
		}
		if nb.value != nil {
			a.Update(*nb.value)
		}
	case domain.KindB:
		b, _ := domain.Narrow(domain.VariantB, n)
		if nb.value != nil {
			return fmt.Errorf("%w: %q is a B, whose b1 is fixed", ErrInvalidTree, nb.id)
		}
		switch len(children) {
		case 0:
		case 1:
			a, ok := domain.Narrow(domain.VariantA, children[0])
			if !ok {
				return fmt.Errorf("%w: %q may only own an A", ErrInvalidTree, nb.id)
			}
			b.Update(a)
		default:
			return fmt.Errorf("%w: %q owns %d nodes, a B owns at most one", ErrInvalidTree, nb.id, len(children))
		}
	case domain.KindC:
		c, _ := domain.Narrow(domain.VariantC, n)
		if nb.value != nil {
			c.SetC1(*nb.value)
		}
		if nb.children != nil {
			bs := make([]*domain.B, 0, len(children))
			for i, child := range children {
				b, ok := domain.Narrow(domain.VariantB, child)
				if !ok {
					return fmt.Errorf("%w: %q may only own B nodes, %q is not one", ErrInvalidTree, nb.id, nb.children[i])
				}
				bs = append(bs, b)
			}
			c.Update(bs...)
		}
	case domain.KindAB:
		ab, _ := domain.Narrow(composite.VariantAB, n)
		if err := nb.leaf(); err != nil {
			return err
		}
		if nb.value != nil {
			ab.Update(*nb.value)
		}
	case domain.KindBC:
		bc, _ := domain.Narrow(composite.VariantBC, n)
		if err := nb.leaf(); err != nil {
			return err
		}
		if nb.value != nil {
			bc.Update(*nb.value)
		}
	}
	return nil
}
