// Package setting provides the typed tree for libconfig-style
// configuration documents.
//
// # Overview
//
// A [Setting] is a node in the configuration tree. It carries a name
// (empty for the root and for list/array elements), a [Type] tag, and a
// value whose shape is fixed by the type: one of the five scalar kinds
// (Int, Int64, Float, String, Boolean) or one of the three aggregate
// kinds (Array, List, Group).
//
// Groups map unique non-empty names to children and iterate in
// lexicographic name order. Lists hold anonymous children of arbitrary
// types in insertion order. Arrays hold anonymous scalar children that
// all share the type of the first inserted element.
//
// # Addressing
//
// Settings are addressed by dotted paths whose components are either
// group member names or bracketed indices:
//
//	s, err := root.Lookup("server.ports.[0]")
//
// Positional indices apply to groups (over the sorted name order),
// lists and arrays. [Setting.PathFromRoot] produces a path that
// resolves back to the same node.
//
// # Mutation
//
// Children are created with [Setting.Add] (groups) and [Setting.Append]
// (lists and arrays), or attached with [Setting.AddChild]. Scalar
// payloads are replaced with the Set* family, which converts between
// the numeric kinds with range checks and between booleans and
// integers; strings assign only to String settings. Failed mutations leave
// the tree unchanged.
//
// Setting trees are not safe for concurrent mutation; distinct trees
// are independent.
package setting
