package parse

import (
	"bytes"
	"errors"
	"regexp"
	"strings"

	"github.com/libconfig/go-libconfig/token"
)

var errDepth = errors.New("include depth exceeded")

type includeState struct {
	fsys     FS
	dir      string
	depth    int
	maxDepth int
}

var includeWord = []byte("@include")

// expandIncludes replaces every "@include <path>" token pair with the
// token streams of the files the path names, recursively. @include is
// recognized purely at the token level.
func expandIncludes(dst []token.Token, toks []token.Token, st *includeState) ([]token.Token, error) {
	for i := 0; i < len(toks); i++ {
		tok := &toks[i]
		if tok.Type != token.TWord || !bytes.Equal(tok.Bytes, includeWord) {
			dst = append(dst, *tok)
			continue
		}
		if i == len(toks)-1 {
			return nil, eofErrAt(tok, "missing path after @include")
		}
		i++
		path := toks[i].Unquoted()
		var err error
		dst, err = st.include(dst, path)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (st *includeState) include(dst []token.Token, path string) ([]token.Token, error) {
	if st.depth >= st.maxDepth {
		return nil, &FileError{Path: path, Err: errDepth}
	}
	resolved, err := resolvePath(path, st.dir)
	if err != nil {
		return nil, err
	}
	files, err := st.matchFiles(resolved)
	if err != nil {
		return nil, err
	}
	sub := &includeState{
		fsys:     st.fsys,
		dir:      st.dir,
		depth:    st.depth + 1,
		maxDepth: st.maxDepth,
	}
	for _, file := range files {
		d, err := st.fsys.ReadFile(file)
		if err != nil {
			return nil, &FileError{Path: file, Err: err}
		}
		toks, err := token.Tokenize(nil, d, file)
		if err != nil {
			return nil, tokenizeError(err)
		}
		dst, err = expandIncludes(dst, toks, sub)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// matchFiles expands resolved into the files it names. A path without a
// directory separator names exactly one file; otherwise the final
// component is an anchored regular expression over the parent
// directory's regular-file entries, and zero matches are fine.
func (st *includeState) matchFiles(resolved string) ([]string, error) {
	sep := strings.LastIndexByte(resolved, '/')
	if sep == -1 {
		return []string{resolved}, nil
	}
	if sep == len(resolved)-1 {
		return nil, &FileError{Path: resolved, Err: errors.New("missing file name")}
	}
	dir, pat := resolved[:sep], resolved[sep+1:]
	rx, err := regexp.Compile("^" + pat + "$")
	if err != nil {
		return nil, &FileError{Path: resolved, Err: err}
	}
	names, err := st.fsys.ReadDir(dir)
	if err != nil {
		return nil, &FileError{Path: dir, Err: err}
	}
	var files []string
	for _, name := range names {
		if !rx.MatchString(name) {
			continue
		}
		abs, err := st.fsys.Abs(dir + "/" + name)
		if err != nil {
			return nil, &FileError{Path: dir + "/" + name, Err: err}
		}
		files = append(files, abs)
	}
	return files, nil
}

// resolvePath resolves a document or include path: absolute paths pass
// through, everything else is relative to the include directory.
func resolvePath(path, includeDir string) (string, error) {
	if path == "" {
		return "", &FileError{Path: path, Err: errors.New("empty path")}
	}
	if path[0] == '/' {
		return path, nil
	}
	return includeDir + "/" + path, nil
}
