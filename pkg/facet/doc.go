/*
Package facet provides named groups of behavior and the Merge primitive that layers them.

A Namespace is a flat, ordered mapping from member name to either a Method or a plain data
field. Methods receive the namespace they are invoked on, never the one they were defined
on, so a method copied by Merge reads the receiving namespace's own fields.

Merge folds one or more sources onto a target:

	is := facet.NewNamespace("is")
	is.Define("ab", isAB)               // direct definition, never overwritten by Merge
	facet.Merge(is, previous, extras)   // extras wins over previous on shared names

Sources may be constructor-level method sets (Methods, Prototype) or live namespaces; Merge
treats them identically. Targets may be a Namespace or a Prototype, the latter affecting
only namespaces instantiated after the merge.

Merge performs no compatibility checks. Mixing incompatible shapes silently produces a
namespace missing the expected behavior; that is a construction-time error of the caller.
*/
package facet
