/*
Package domain contains the tagged-union node model that every frame inspects and constructs.

Each node carries an immutable discriminant (Kind) set exactly once at construction, plus
variant-specific fields that change only through explicit Update operations. The package is
pure: no I/O, no logging, no errors from model operations.

# Key Entities

  - Kind: the stable, small-integer tag enumeration (A, B, C, AB, BC and the reserved ABC).
  - Node: the sealed interface implemented by every variant. New variants are added outside
    this package by embedding Header (see package composite).
  - A, B, C: the base variants.
  - Nodes: an ordered, homogeneous collection with find-first and whole-collection traversal.
  - Variant: a constructor descriptor coupling a tag with the function producing its default node.
*/
package domain
