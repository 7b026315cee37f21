package parse

import (
	"errors"
	"fmt"

	"github.com/libconfig/go-libconfig/token"
)

var (
	ErrParse  = errors.New("parse error")
	ErrFileIO = errors.New("file i/o error")
)

// Error is a parse failure with the coordinates of the offending token.
type Error struct {
	Err  error
	File string
	Line int
	Col  int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	pos := token.Pos{File: e.File, Line: e.Line, Col: e.Col}
	return fmt.Sprintf("%s at %s", e.Err.Error(), pos)
}

func syntaxErrAt(pos token.Pos, format string, args ...any) error {
	return &Error{
		Err:  fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...)),
		File: pos.File,
		Line: pos.Line,
		Col:  pos.Col,
	}
}

// wrapErrAt attaches coordinates to an error that already carries its
// kind, e.g. a setting type or name violation diagnosed mid-parse.
func wrapErrAt(err error, pos token.Pos) error {
	return &Error{Err: err, File: pos.File, Line: pos.Line, Col: pos.Col}
}

// eofErrAt reports an unexpected end of input against tok; per the
// error contract the column points one past the token's end.
func eofErrAt(tok *token.Token, format string, args ...any) error {
	pos := tok.Pos
	pos.Col += len(tok.Bytes)
	return syntaxErrAt(pos, format, args...)
}

// FileError is a file i/o failure during parsing or include expansion.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFileIO}
	}
	return []error{ErrFileIO, e.Err}
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrFileIO.Error(), e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", ErrFileIO.Error(), e.Path, e.Err)
}
