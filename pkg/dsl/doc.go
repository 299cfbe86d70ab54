/*
Package dsl provides a fluent builder for node trees.

Nodes are declared by id, and ownership is expressed by naming children. Build
instantiates every node through the make facet of a chain stage, so a tree can only use
kinds that stage knows how to construct.

Example usage:

	b := dsl.New()
	b.Add("root").C().Value(1).Owns("b")
	b.Add("b").B().Owns("a")
	b.Add("a").A().Value(10)

	root, err := b.Build(strata.New(), "root")
*/
package dsl
