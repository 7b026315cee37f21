// Package token provides tokenization support for libconfig-style
// configuration text.
//
// [Tokenize] is a function for tokenizing bytes. It strips comments,
// assembles quoted strings with escape processing, and records 1-based
// line/column coordinates for every token.
package token
