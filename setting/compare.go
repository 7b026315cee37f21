package setting

// Equal reports structural equality: same name, type and value, with
// aggregate children pairwise equal in iteration order. Source
// provenance and integer format hints are not compared.
func Equal(a, b *Setting) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.name != b.name || a.typ != b.typ {
		return false
	}
	switch a.typ {
	case TypeBoolean:
		return a.b == b.b
	case TypeInt, TypeInt64:
		return a.i64 == b.i64
	case TypeFloat:
		return a.f32 == b.f32
	case TypeString:
		return a.str == b.str
	case TypeGroup, TypeList, TypeArray:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (s *Setting) Equal(o *Setting) bool {
	return Equal(s, o)
}
