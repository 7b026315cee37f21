package encode

import "errors"

var ErrEncoding = errors.New("encoding error")

type Option func(*EncState)

// EncodeIndent sets the indent unit in spaces; the default is four.
func EncodeIndent(n int) Option {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting indent depth.
func Depth(n int) Option {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors turns on ANSI coloring.
func EncodeColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c.Color }
}
