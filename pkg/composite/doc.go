// Package composite extends the node model and the frame chain with the AB and BC kinds.
//
// The variants live outside package domain: they join the union by embedding domain.Header,
// which is the only way to satisfy domain.Node from another package. NewFrame is the chain
// step that teaches every facet about them. It widens is, get, make, node.is and node.get
// through explicit delegation to the previous stage, and registers the widened namespaces
// with frame.Extend so each keeps the members of the namespace it replaces.
package composite
