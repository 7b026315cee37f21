// Package encode renders setting trees as libconfig-style text.
//
//	var buf bytes.Buffer
//	err := encode.Encode(root, &buf)
//
// The output parses back into a structurally equal tree, and printing
// is idempotent: encoding, parsing, and encoding again reproduces the
// bytes.
package encode
