/*
Package frame layers predicate, accessor and factory facets over the node model.

A chain step takes the capabilities produced by the previous step and returns a wider set:

	base := frame.New()
	is := frame.NewIs(base)     // is.kind, is.a, is.b, is.c
	get := frame.NewGet(is)     // get.v, get.a1, ... get.c2
	mk := frame.NewMake(get)    // make.n
	full := frame.NewNode(mk)   // node.is, node.get, node.walk

Steps are pure: each returns a new stage and leaves its input usable. Every stage shares one
Session with the others (the flip flag), while its Frame holds the namespace view at
that point of the chain.

Capabilities are exposed twice. The typed facets (Is, Get, Make, Structure) are what Go callers use;
each stage type implements the capability interface of every earlier stage, so a later stage can
be passed wherever an earlier one is expected. The same operations are also registered as
facet namespaces on the Frame ("is", "get", "make", "node", "node.is", "node.get"), built with
facet.Merge so a widened namespace keeps every member of the one it replaces. Further steps
outside this package (see package composite) use Frame.Extend to do the same.
*/
package frame
