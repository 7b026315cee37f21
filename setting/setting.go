package setting

import (
	"sort"
)

// Setting is a node in a configuration tree. The zero value is not
// useful; create settings with [New] or the Add/Append operations.
type Setting struct {
	name   string
	typ    Type
	parent *Setting

	// aggregate payload; group children are kept sorted by name
	children []*Setting
	elemType Type

	// scalar payload
	str    string
	b      bool
	i64    int64
	f32    float32
	format Format

	// source provenance
	file      string
	line, col int
}

// New returns a parentless setting of the given type. It panics on a
// type outside the eight value kinds; callers that take types from
// outside should validate first.
func New(name string, typ Type) *Setting {
	switch typ {
	case TypeInt, TypeInt64, TypeFloat, TypeString, TypeBoolean,
		TypeArray, TypeList, TypeGroup:
	default:
		panic("unknown setting type")
	}
	return &Setting{name: name, typ: typ}
}

// NewRoot returns an anonymous group suitable as a document root.
func NewRoot() *Setting {
	return New("", TypeGroup)
}

func (s *Setting) Name() string {
	return s.name
}

func (s *Setting) Type() Type {
	return s.typ
}

func (s *Setting) Parent() *Setting {
	return s.parent
}

func (s *Setting) IsRoot() bool {
	return s.parent == nil
}

func (s *Setting) IsGroup() bool     { return s.typ == TypeGroup }
func (s *Setting) IsList() bool      { return s.typ == TypeList }
func (s *Setting) IsArray() bool     { return s.typ == TypeArray }
func (s *Setting) IsAggregate() bool { return s.typ.IsAggregate() }
func (s *Setting) IsScalar() bool    { return s.typ.IsScalar() }
func (s *Setting) IsNumber() bool    { return s.typ.IsNumber() }

// Len returns the number of children; 0 for scalars.
func (s *Setting) Len() int {
	return len(s.children)
}

func (s *Setting) Format() Format {
	return s.format
}

func (s *Setting) SetFormat(f Format) {
	s.format = f
}

// ElemType returns the element type of an array, TypeNone until the
// array's first element is added, and TypeNone for non-arrays. Removing
// elements does not reset it.
func (s *Setting) ElemType() Type {
	return s.elemType
}

// Source returns the coordinates of the token that introduced this
// setting; line is 0 for programmatically created settings.
func (s *Setting) Source() (file string, line, col int) {
	return s.file, s.line, s.col
}

func (s *Setting) SetSource(file string, line, col int) {
	s.file = file
	s.line = line
	s.col = col
}

// Child returns the group member with the given name, or nil.
func (s *Setting) Child(name string) *Setting {
	if s.typ != TypeGroup {
		return nil
	}
	i, ok := s.search(name)
	if !ok {
		return nil
	}
	return s.children[i]
}

// search locates name in the sorted group children.
func (s *Setting) search(name string) (int, bool) {
	i := sort.Search(len(s.children), func(i int) bool {
		return s.children[i].name >= name
	})
	return i, i < len(s.children) && s.children[i].name == name
}

// At returns the child at position i. For groups the position is over
// the lexicographic name order; for lists and arrays it is insertion
// order.
func (s *Setting) At(i int) (*Setting, error) {
	if i < 0 {
		return nil, invalidArg("negative index %d", i)
	}
	if !s.typ.IsAggregate() {
		return nil, typeErr("cannot index %s setting", s.typ)
	}
	if i >= len(s.children) {
		return nil, &NotFoundError{Path: indexComponent(i)}
	}
	return s.children[i], nil
}

// Index returns this setting's position in its parent, -1 for the root.
func (s *Setting) Index() int {
	if s.parent == nil {
		return -1
	}
	for i, c := range s.parent.children {
		if c == s {
			return i
		}
	}
	return -1
}

// Add creates an empty child of the given type in a group. The name
// must be non-empty and unique within the group.
func (s *Setting) Add(name string, typ Type) (*Setting, error) {
	if s.typ != TypeGroup {
		return nil, typeErr("cannot add named setting to %s", s.typ)
	}
	if name == "" {
		return nil, invalidArg("empty setting name")
	}
	child := New(name, typ)
	if err := s.AddChild(child); err != nil {
		return nil, err
	}
	return child, nil
}

// Append creates an empty anonymous child of the given type in a list
// or array.
func (s *Setting) Append(typ Type) (*Setting, error) {
	switch s.typ {
	case TypeList, TypeArray:
	default:
		return nil, typeErr("cannot append to %s", s.typ)
	}
	child := New("", typ)
	if err := s.AddChild(child); err != nil {
		return nil, err
	}
	return child, nil
}

// AddChild attaches a parentless setting as a child, enforcing the
// aggregate invariants: unique non-empty names in groups, scalar
// children of one shared type in arrays. List and array children are
// made anonymous.
func (s *Setting) AddChild(child *Setting) error {
	switch s.typ {
	case TypeGroup:
		if child.name == "" {
			return invalidArg("empty setting name")
		}
		i, ok := s.search(child.name)
		if ok {
			return &NameError{Path: childPath(s, child.name)}
		}
		child.parent = s
		s.children = append(s.children, nil)
		copy(s.children[i+1:], s.children[i:])
		s.children[i] = child
		return nil
	case TypeList:
		child.name = ""
		child.parent = s
		s.children = append(s.children, child)
		return nil
	case TypeArray:
		if !child.typ.IsScalar() {
			return typeErr("array elements must be scalar, got %s", child.typ)
		}
		if s.elemType == TypeNone {
			s.elemType = child.typ
		} else if child.typ != s.elemType {
			return typeErr("array of %s cannot hold %s", s.elemType, child.typ)
		}
		child.name = ""
		child.parent = s
		s.children = append(s.children, child)
		return nil
	default:
		return typeErr("cannot add child to %s", s.typ)
	}
}

// Remove detaches the setting addressed by path from its parent group.
// A dotted path removes the leaf from the group it resolves within.
func (s *Setting) Remove(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	parent, leaf := pathParent(path), pathLeaf(path)
	target := s
	if parent != "" {
		var err error
		target, err = s.Lookup(parent)
		if err != nil {
			return err
		}
	}
	if target.typ != TypeGroup {
		return typeErr("cannot remove named setting from %s", target.typ)
	}
	i, ok := target.search(leaf)
	if !ok {
		return &NotFoundError{Path: path}
	}
	target.removeAt(i)
	return nil
}

// RemoveAt detaches the child at position i. Positions of subsequent
// list and array children shift down; group positions follow the
// sorted order of the remaining names.
func (s *Setting) RemoveAt(i int) error {
	if i < 0 {
		return invalidArg("negative index %d", i)
	}
	if !s.typ.IsAggregate() {
		return typeErr("cannot index %s setting", s.typ)
	}
	if i >= len(s.children) {
		return &NotFoundError{Path: indexComponent(i)}
	}
	s.removeAt(i)
	return nil
}

func (s *Setting) removeAt(i int) {
	s.children[i].parent = nil
	s.children = append(s.children[:i], s.children[i+1:]...)
}

// Clone deep-copies the subtree rooted at s. The copy is parentless.
func (s *Setting) Clone() *Setting {
	dst := &Setting{
		name:     s.name,
		typ:      s.typ,
		elemType: s.elemType,
		str:      s.str,
		b:        s.b,
		i64:      s.i64,
		f32:      s.f32,
		format:   s.format,
		file:     s.file,
		line:     s.line,
		col:      s.col,
	}
	if s.children != nil {
		dst.children = make([]*Setting, len(s.children))
		for i, c := range s.children {
			cc := c.Clone()
			cc.parent = dst
			dst.children[i] = cc
		}
	}
	return dst
}

// Visit walks the subtree rooted at s in depth-first order, calling f
// before (isPost false) and after (isPost true) each node's children.
// Returning false from the pre call skips the children.
func (s *Setting) Visit(f func(s *Setting, isPost bool) (bool, error)) error {
	dive, err := f(s, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range s.children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(s, true); err != nil {
		return err
	}
	return nil
}

// Root returns the tree's root.
func (s *Setting) Root() *Setting {
	res := s
	for res.parent != nil {
		res = res.parent
	}
	return res
}
