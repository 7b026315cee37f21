package setting

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("setting not found")
	ErrName            = errors.New("setting name in use")
	ErrType            = errors.New("setting type")
	ErrInvalidArgument = errors.New("invalid argument")
)

// NotFoundError reports a lookup failure and carries the full requested
// path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound.Error(), e.Path)
}

// NameError reports an attempt to add a duplicate name to a group and
// carries the path of the offending insertion.
type NameError struct {
	Path string
}

func (e *NameError) Unwrap() error {
	return ErrName
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s: %q", ErrName.Error(), e.Path)
}

func typeErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrType, fmt.Sprintf(format, args...))
}

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
