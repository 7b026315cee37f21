package setting

import (
	"errors"
	"strconv"
	"strings"
)

// A path is a dot-separated sequence of components; a component is a
// group member name or "[N]" with N a non-negative decimal index.
// Paths never begin or end with '.'.

func checkPath(path string) error {
	if path == "" {
		return invalidArg("empty path")
	}
	if path[0] == '.' || path[len(path)-1] == '.' {
		return invalidArg("path %q begins or ends with '.'", path)
	}
	return nil
}

// pathParent returns everything before the last '.', or "" for a bare
// component.
func pathParent(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i == -1 {
		return ""
	}
	return path[:i]
}

// pathLeaf returns the component after the last '.', or the whole path.
func pathLeaf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i == -1 {
		return path
	}
	return path[i+1:]
}

// component parses a single path component as an index; ok is false for
// name components.
func component(c string) (index int, isIndex, ok bool) {
	if len(c) == 0 {
		return 0, false, false
	}
	if c[0] != '[' {
		return 0, false, true
	}
	if len(c) < 3 || c[len(c)-1] != ']' {
		return 0, true, false
	}
	u, err := strconv.ParseUint(c[1:len(c)-1], 10, 31)
	if err != nil {
		return 0, true, false
	}
	return int(u), true, true
}

func indexComponent(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// Lookup resolves path relative to s. Resolution is left-associative:
// the head component is resolved on s and the remainder on the child.
// The whole path is validated before any step resolves; a failed step
// reports the full requested path.
func (s *Setting) Lookup(path string) (*Setting, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}
	comps := strings.Split(path, ".")
	for _, comp := range comps {
		_, isIndex, ok := component(comp)
		if ok {
			continue
		}
		if isIndex {
			return nil, invalidArg("bad index component %q in path %q", comp, path)
		}
		return nil, invalidArg("empty component in path %q", path)
	}
	cur := s
	for _, comp := range comps {
		idx, isIndex, _ := component(comp)
		if isIndex {
			if !cur.typ.IsAggregate() || idx >= len(cur.children) {
				return nil, &NotFoundError{Path: path}
			}
			cur = cur.children[idx]
			continue
		}
		child := cur.Child(comp)
		if child == nil {
			return nil, &NotFoundError{Path: path}
		}
		cur = child
	}
	return cur, nil
}

// Exists reports whether path resolves relative to s. Malformed paths
// are an error.
func (s *Setting) Exists(path string) (bool, error) {
	_, err := s.Lookup(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

// PathFromRoot returns a path resolving from the root back to s. Group
// members appear by name, list and array elements by index. The root
// itself has the empty path.
func (s *Setting) PathFromRoot() string {
	if s.parent == nil {
		return ""
	}
	prefix := s.parent.PathFromRoot()
	var comp string
	switch s.parent.typ {
	case TypeGroup:
		comp = s.name
	default:
		comp = indexComponent(s.Index())
	}
	if prefix == "" {
		return comp
	}
	return prefix + "." + comp
}

func childPath(parent *Setting, name string) string {
	prefix := parent.PathFromRoot()
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
