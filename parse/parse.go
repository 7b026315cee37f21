package parse

import (
	"errors"
	"fmt"

	"github.com/libconfig/go-libconfig/setting"
	"github.com/libconfig/go-libconfig/token"
)

// Parse parses a whole document into a tree rooted at an anonymous
// group. @include paths resolve against the configured include
// directory.
func Parse(d []byte, opts ...Option) (*setting.Setting, error) {
	return parseBytes(d, newOpts(opts))
}

// ParseFile reads and parses path; a non-absolute path resolves against
// the configured include directory.
func ParseFile(path string, opts ...Option) (*setting.Setting, error) {
	o := newOpts(opts)
	resolved, err := resolvePath(path, o.includeDir)
	if err != nil {
		return nil, err
	}
	d, err := o.fsys.ReadFile(resolved)
	if err != nil {
		return nil, &FileError{Path: resolved, Err: err}
	}
	o.filename = resolved
	return parseBytes(d, o)
}

func parseBytes(d []byte, o *parseOpts) (*setting.Setting, error) {
	toks, err := token.Tokenize(nil, d, o.filename)
	if err != nil {
		return nil, tokenizeError(err)
	}
	st := &includeState{fsys: o.fsys, dir: o.includeDir, maxDepth: o.maxDepth}
	toks, err = expandIncludes(nil, toks, st)
	if err != nil {
		return nil, err
	}
	toks = concatStrings(toks)
	root := setting.NewRoot()
	pi := 0
	if err := parseSettings(toks, &pi, root, nil); err != nil {
		return nil, err
	}
	return root, nil
}

func tokenizeError(err error) error {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return &Error{
			Err:  fmt.Errorf("%w: %w", ErrParse, te.Err),
			File: te.Pos.File,
			Line: te.Pos.Line,
			Col:  te.Pos.Col,
		}
	}
	return fmt.Errorf("%w: %w", ErrParse, err)
}

// parseSettings consumes setting* into group. With opener non-nil it
// stops at the matching '}', otherwise at end of input.
func parseSettings(toks []token.Token, pi *int, group *setting.Setting, opener *token.Token) error {
	for {
		if *pi >= len(toks) {
			if opener != nil {
				return syntaxErrAt(opener.Pos, "unclosed '{'")
			}
			return nil
		}
		tok := &toks[*pi]
		if opener != nil && tok.Type == token.TRCurl {
			*pi++
			return nil
		}
		if tok.Type != token.TWord {
			return syntaxErrAt(tok.Pos, "unexpected token %q, expected setting name", tok.String())
		}
		nameTok := tok
		*pi++
		if *pi >= len(toks) {
			return eofErrAt(nameTok, "unexpected end of file after %q", nameTok.String())
		}
		sep := &toks[*pi]
		if sep.Type != token.TEquals && sep.Type != token.TColon {
			return syntaxErrAt(sep.Pos, "unexpected token %q, expected '=' or ':'", sep.String())
		}
		*pi++
		if *pi >= len(toks) {
			return eofErrAt(sep, "unexpected end of file")
		}
		val, err := parseValue(toks, pi, nameTok.String(), nameTok.Pos)
		if err != nil {
			return err
		}
		if err := group.AddChild(val); err != nil {
			return wrapErrAt(err, nameTok.Pos)
		}
		skipTerminator(toks, pi)
	}
}

func skipTerminator(toks []token.Token, pi *int) {
	if *pi >= len(toks) {
		return
	}
	switch toks[*pi].Type {
	case token.TSemi, token.TComma:
		*pi++
	}
}

// parseValue consumes one value; the produced setting carries name and
// the coordinates of pos (its name token, or the value itself when
// anonymous).
func parseValue(toks []token.Token, pi *int, name string, pos token.Pos) (*setting.Setting, error) {
	tok := &toks[*pi]
	switch tok.Type {
	case token.TLCurl:
		*pi++
		g := setting.New(name, setting.TypeGroup)
		g.SetSource(pos.File, pos.Line, pos.Col)
		if err := parseSettings(toks, pi, g, tok); err != nil {
			return nil, err
		}
		return g, nil
	case token.TLParen:
		*pi++
		return parseList(toks, pi, name, pos, tok)
	case token.TLSquare:
		*pi++
		return parseArray(toks, pi, name, pos, tok)
	case token.TWord, token.TString:
		*pi++
		s, err := scalarSetting(name, tok)
		if err != nil {
			return nil, err
		}
		s.SetSource(pos.File, pos.Line, pos.Col)
		return s, nil
	default:
		return nil, syntaxErrAt(tok.Pos, "unexpected token %q, expected a value", tok.String())
	}
}

func parseList(toks []token.Token, pi *int, name string, pos token.Pos, opener *token.Token) (*setting.Setting, error) {
	l := setting.New(name, setting.TypeList)
	l.SetSource(pos.File, pos.Line, pos.Col)
	for {
		if *pi >= len(toks) {
			return nil, syntaxErrAt(opener.Pos, "unclosed '('")
		}
		tok := &toks[*pi]
		if tok.Type == token.TRParen {
			*pi++
			return l, nil
		}
		elt, err := parseValue(toks, pi, "", tok.Pos)
		if err != nil {
			return nil, err
		}
		if err := l.AddChild(elt); err != nil {
			return nil, wrapErrAt(err, tok.Pos)
		}
		if err := eltSeparator(toks, pi, opener, token.TRParen, "')'"); err != nil {
			return nil, err
		}
	}
}

func parseArray(toks []token.Token, pi *int, name string, pos token.Pos, opener *token.Token) (*setting.Setting, error) {
	a := setting.New(name, setting.TypeArray)
	a.SetSource(pos.File, pos.Line, pos.Col)
	for {
		if *pi >= len(toks) {
			return nil, syntaxErrAt(opener.Pos, "unclosed '['")
		}
		tok := &toks[*pi]
		switch tok.Type {
		case token.TRSquare:
			*pi++
			return a, nil
		case token.TWord, token.TString:
			*pi++
			elt, err := scalarSetting("", tok)
			if err != nil {
				return nil, err
			}
			elt.SetSource(tok.Pos.File, tok.Pos.Line, tok.Pos.Col)
			if err := a.AddChild(elt); err != nil {
				return nil, wrapErrAt(err, tok.Pos)
			}
		default:
			return nil, syntaxErrAt(tok.Pos, "unexpected token %q, expected scalar array element", tok.String())
		}
		if err := eltSeparator(toks, pi, opener, token.TRSquare, "']'"); err != nil {
			return nil, err
		}
	}
}

// eltSeparator consumes the ',' between aggregate elements; a trailing
// comma before the closer is tolerated.
func eltSeparator(toks []token.Token, pi *int, opener *token.Token, closer token.Type, closerName string) error {
	if *pi >= len(toks) {
		return syntaxErrAt(opener.Pos, "unclosed %q", opener.String())
	}
	tok := &toks[*pi]
	switch tok.Type {
	case token.TComma:
		*pi++
		return nil
	case closer:
		return nil
	default:
		return syntaxErrAt(tok.Pos, "unexpected token %q, expected ',' or %s", tok.String(), closerName)
	}
}

// concatStrings merges adjacent string-literal tokens by splicing out
// the abutting quotes, keeping the left token's coordinates. It is a
// separate pass over the token stream, after include expansion and
// before grammar parsing.
func concatStrings(toks []token.Token) []token.Token {
	res := make([]token.Token, 0, len(toks))
	for i := range toks {
		cur := &toks[i]
		if len(res) > 0 {
			prev := &res[len(res)-1]
			if prev.Type == token.TString && cur.Type == token.TString {
				merged := make([]byte, 0, len(prev.Bytes)+len(cur.Bytes)-2)
				merged = append(merged, prev.Bytes[:len(prev.Bytes)-1]...)
				merged = append(merged, cur.Bytes[1:]...)
				prev.Bytes = merged
				continue
			}
		}
		res = append(res, *cur)
	}
	return res
}
