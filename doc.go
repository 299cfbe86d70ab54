/*
Package strata composes capability facets over a tagged-union node model.

Nodes (package domain) carry an immutable tag and variant-specific fields. Everything a caller
does with them goes through a frame: a bundle of facets built by a chain of steps, each of which
takes the previous stage and returns a wider one.

# Concept

	is    -> predicates:   is.kind, is.a, is.b, is.c
	get   -> accessors:    get.v, get.a1, get.b1, get.b2, get.c1, get.c2
	make  -> factory:      make.n
	node  -> structure:    node.walk, node.is.*, node.get.*
	composite -> AB and BC: is.ab, is.bc, get.ab1, get.bc1, node.is.composite, ...

A later stage is a superset of every earlier one. Typed facets guarantee it at compile time,
and the named namespaces guarantee it through facet.Merge.

# Usage

	f := strata.New(strata.WithLogger(logger))

	a, _ := f.Make.N(domain.KindA)
	b := domain.NewB().Update(a.(*domain.A))
	c := domain.NewC().Update(b).SetC1(10)

	f.Is.B(b)            // true
	f.Is.A(domain.KindA) // true: predicates accept bare tags
	f.Get.V(c)           // 10, true
	f.Get.C1(a)          // 0, false: accessors never fail on a tag mismatch

	// The same operations by name:
	f.Call("is", "b", b)

Build stops the chain at a named stage:

	stage, err := strata.Build("get")
*/
package strata
