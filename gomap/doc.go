// Package gomap converts between setting trees and native Go values.
//
// [ToAny] projects a tree onto maps, slices and scalars, which is the
// bridge to JSON/YAML marshalling and to expression evaluation.
// [FromAny] builds a tree from such values; homogeneous scalar slices
// become arrays, everything else sliced becomes a list.
package gomap
