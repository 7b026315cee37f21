package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/libconfig/go-libconfig/setting"
	"github.com/libconfig/go-libconfig/token"
)

// Scalar literal recognition. The anchored patterns are normative;
// anything that matches none of them is an invalid scalar.
var (
	rxBoolean = regexp.MustCompile(`^(?:[Tt][Rr][Uu][Ee]|[Ff][Aa][Ll][Ss][Ee])$`)
	rxInt     = regexp.MustCompile(`^[-+]?[0-9]+$`)
	rxInt64   = regexp.MustCompile(`^[-+]?[0-9]+LL?$`)
	rxHex     = regexp.MustCompile(`^0[Xx][0-9A-Fa-f]+$`)
	rxHex64   = regexp.MustCompile(`^0[Xx][0-9A-Fa-f]+LL?$`)
	rxFloat   = regexp.MustCompile(`^(?:[-+]?[0-9]*\.[0-9]*(?:[eE][-+]?[0-9]+)?|[-+]?[0-9]+(?:\.[0-9]*)?[eE][-+]?[0-9]+)$`)
)

// scalarSetting types and converts a single value token into a scalar
// setting named name.
func scalarSetting(name string, tok *token.Token) (*setting.Setting, error) {
	v := string(tok.Bytes)
	switch {
	case tok.Type == token.TString:
		return setting.NewString(name, tok.Unquoted()), nil
	case rxBoolean.MatchString(v):
		return setting.NewBool(name, strings.EqualFold(v, "true")), nil
	case rxHex.MatchString(v):
		u, err := strconv.ParseUint(v[2:], 16, 32)
		if err != nil {
			return nil, syntaxErrAt(tok.Pos, "integer overflow in %q", v)
		}
		s := setting.NewInt(name, int32(u))
		s.SetFormat(setting.FormatHex)
		return s, nil
	case rxHex64.MatchString(v):
		u, err := strconv.ParseUint(strings.TrimRight(v[2:], "L"), 16, 64)
		if err != nil {
			return nil, syntaxErrAt(tok.Pos, "integer overflow in %q", v)
		}
		s := setting.NewInt64(name, int64(u))
		s.SetFormat(setting.FormatHex)
		return s, nil
	case rxInt.MatchString(v):
		i, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, syntaxErrAt(tok.Pos, "integer overflow in %q", v)
		}
		return setting.NewInt(name, int32(i)), nil
	case rxInt64.MatchString(v):
		i, err := strconv.ParseInt(strings.TrimRight(v, "L"), 10, 64)
		if err != nil {
			return nil, syntaxErrAt(tok.Pos, "integer overflow in %q", v)
		}
		return setting.NewInt64(name, i), nil
	case rxFloat.MatchString(v):
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, syntaxErrAt(tok.Pos, "invalid float %q", v)
		}
		return setting.NewFloat(name, float32(f)), nil
	default:
		return nil, syntaxErrAt(tok.Pos, "invalid scalar %q", v)
	}
}
