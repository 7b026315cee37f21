package setting

import (
	"errors"
	"testing"
)

func TestGroupAdd(t *testing.T) {
	root := NewRoot()
	g, err := root.Add("g", TypeGroup)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Add("b", TypeInt); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Add("a", TypeString); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 2 {
		t.Fatalf("got len %d", g.Len())
	}
	// lexicographic order
	first, err := g.At(0)
	if err != nil {
		t.Fatal(err)
	}
	if first.Name() != "a" {
		t.Errorf("positional order: got %q, want \"a\"", first.Name())
	}
	if _, err := g.Add("a", TypeInt); !errors.Is(err, ErrName) {
		t.Errorf("duplicate add: got %v", err)
	}
	var ne *NameError
	_, err = g.Add("a", TypeInt)
	if !errors.As(err, &ne) || ne.Path != "g.a" {
		t.Errorf("name error path: got %v", err)
	}
	if _, err := g.Add("", TypeInt); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty name: got %v", err)
	}
	if _, err := first.Add("x", TypeInt); !errors.Is(err, ErrType) {
		t.Errorf("add to scalar: got %v", err)
	}
}

func TestListAppend(t *testing.T) {
	root := NewRoot()
	l, err := root.Add("l", TypeList)
	if err != nil {
		t.Fatal(err)
	}
	for _, typ := range []Type{TypeInt, TypeString, TypeGroup, TypeList, TypeArray} {
		c, err := l.Append(typ)
		if err != nil {
			t.Fatal(err)
		}
		if c.Name() != "" {
			t.Errorf("list child has name %q", c.Name())
		}
	}
	if l.Len() != 5 {
		t.Fatalf("got len %d", l.Len())
	}
	if _, err := root.Append(TypeInt); !errors.Is(err, ErrType) {
		t.Errorf("append to group: got %v", err)
	}
}

func TestArrayHomogeneity(t *testing.T) {
	root := NewRoot()
	a, err := root.Add("a", TypeArray)
	if err != nil {
		t.Fatal(err)
	}
	if a.ElemType() != TypeNone {
		t.Errorf("empty array elem type %s", a.ElemType())
	}
	if _, err := a.Append(TypeInt); err != nil {
		t.Fatal(err)
	}
	if a.ElemType() != TypeInt {
		t.Errorf("elem type %s", a.ElemType())
	}
	if _, err := a.Append(TypeString); !errors.Is(err, ErrType) {
		t.Errorf("mixed append: got %v", err)
	}
	if _, err := a.Append(TypeGroup); !errors.Is(err, ErrType) {
		t.Errorf("aggregate element: got %v", err)
	}
	if a.Len() != 1 {
		t.Errorf("failed appends changed the array: len %d", a.Len())
	}
}

func TestRemove(t *testing.T) {
	root := NewRoot()
	g, _ := root.Add("g", TypeGroup)
	g.Add("a", TypeInt)
	g.Add("b", TypeInt)
	if err := root.Remove("g.a"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := root.Exists("g.a"); ok {
		t.Error("g.a still exists")
	}
	if err := root.Remove("g.a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("double remove: got %v", err)
	}
	if err := root.Remove(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty path: got %v", err)
	}

	l, _ := root.Add("l", TypeList)
	l.Append(TypeInt)
	l.Append(TypeString)
	if err := l.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	got, err := l.At(0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type() != TypeString {
		t.Errorf("index shift: got %s", got.Type())
	}
	if err := l.RemoveAt(5); !errors.Is(err, ErrNotFound) {
		t.Errorf("out of range: got %v", err)
	}
	if err := l.RemoveAt(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative index: got %v", err)
	}
}

func TestParentIndexRoot(t *testing.T) {
	root := NewRoot()
	g, _ := root.Add("g", TypeGroup)
	c, _ := g.Add("c", TypeInt)
	if !root.IsRoot() || g.IsRoot() {
		t.Error("root flags wrong")
	}
	if c.Parent() != g || g.Parent() != root {
		t.Error("parent links wrong")
	}
	if root.Index() != -1 {
		t.Errorf("root index %d", root.Index())
	}
	if c.Index() != 0 {
		t.Errorf("child index %d", c.Index())
	}
	if c.Root() != root {
		t.Error("Root() wrong")
	}
}

func TestClone(t *testing.T) {
	root := NewRoot()
	g, _ := root.Add("g", TypeGroup)
	x, _ := g.Add("x", TypeInt)
	x.SetInt(7)
	x.SetFormat(FormatHex)
	a, _ := g.Add("a", TypeArray)
	e, _ := a.Append(TypeInt)
	e.SetInt(1)

	c := g.Clone()
	if c.Parent() != nil {
		t.Error("clone has a parent")
	}
	if !Equal(c, g) {
		t.Error("clone not equal to original")
	}
	// mutation independence
	cx, err := c.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	cx.SetInt(8)
	v, _ := x.Int()
	if v != 7 {
		t.Error("clone shares state with original")
	}
	if cx.Format() != FormatHex {
		t.Error("clone dropped format hint")
	}
	ca, _ := c.Lookup("a")
	if ca.ElemType() != TypeInt {
		t.Error("clone dropped array element type")
	}
}

func TestEqual(t *testing.T) {
	mk := func() *Setting {
		root := NewRoot()
		g, _ := root.Add("g", TypeGroup)
		i, _ := g.Add("i", TypeInt)
		i.SetInt(3)
		l, _ := root.Add("l", TypeList)
		s, _ := l.Append(TypeString)
		s.SetString("v")
		return root
	}
	a, b := mk(), mk()
	if !Equal(a, b) {
		t.Error("identical trees unequal")
	}
	// format hints are not compared
	ai, _ := a.Lookup("g.i")
	ai.SetFormat(FormatHex)
	if !Equal(a, b) {
		t.Error("format hint affects equality")
	}
	ai.SetInt(4)
	if Equal(a, b) {
		t.Error("value change not detected")
	}
	bi, _ := b.Lookup("g.i")
	bi.SetInt(4)
	if !Equal(a, b) {
		t.Error("trees should match again")
	}
	b.Remove("l")
	if Equal(a, b) {
		t.Error("child count ignored")
	}
}
