package setting

import "math"

// Typed accessors realize the scalar conversion matrix: booleans read
// as any integer kind and as bool; integers read as any numeric or
// boolean kind with range and sign checks; floats read as float kinds
// and bool; strings only as string.

func (s *Setting) Bool() (bool, error) {
	switch s.typ {
	case TypeBoolean:
		return s.b, nil
	case TypeInt, TypeInt64:
		return s.i64 != 0, nil
	case TypeFloat:
		return s.f32 != 0, nil
	}
	return false, typeErr("cannot read %s as bool", s.typ)
}

func (s *Setting) Int() (int32, error) {
	switch s.typ {
	case TypeBoolean:
		return b2i[int32](s.b), nil
	case TypeInt:
		return int32(s.i64), nil
	case TypeInt64:
		if s.i64 > math.MaxInt32 || s.i64 < math.MinInt32 {
			return 0, typeErr("value %d overflows int32", s.i64)
		}
		return int32(s.i64), nil
	}
	return 0, typeErr("cannot read %s as int32", s.typ)
}

func (s *Setting) Uint() (uint32, error) {
	switch s.typ {
	case TypeBoolean:
		return b2i[uint32](s.b), nil
	case TypeInt, TypeInt64:
		if s.i64 < 0 {
			return 0, typeErr("negative value %d", s.i64)
		}
		if s.i64 > math.MaxUint32 {
			return 0, typeErr("value %d overflows uint32", s.i64)
		}
		return uint32(s.i64), nil
	}
	return 0, typeErr("cannot read %s as uint32", s.typ)
}

func (s *Setting) Int64() (int64, error) {
	switch s.typ {
	case TypeBoolean:
		return b2i[int64](s.b), nil
	case TypeInt, TypeInt64:
		return s.i64, nil
	}
	return 0, typeErr("cannot read %s as int64", s.typ)
}

func (s *Setting) Uint64() (uint64, error) {
	switch s.typ {
	case TypeBoolean:
		return b2i[uint64](s.b), nil
	case TypeInt, TypeInt64:
		if s.i64 < 0 {
			return 0, typeErr("negative value %d", s.i64)
		}
		return uint64(s.i64), nil
	}
	return 0, typeErr("cannot read %s as uint64", s.typ)
}

func (s *Setting) Float() (float32, error) {
	switch s.typ {
	case TypeInt, TypeInt64:
		return float32(s.i64), nil
	case TypeFloat:
		return s.f32, nil
	}
	return 0, typeErr("cannot read %s as float32", s.typ)
}

func (s *Setting) Float64() (float64, error) {
	switch s.typ {
	case TypeInt, TypeInt64:
		return float64(s.i64), nil
	case TypeFloat:
		return float64(s.f32), nil
	}
	return 0, typeErr("cannot read %s as float64", s.typ)
}

func (s *Setting) Str() (string, error) {
	if s.typ != TypeString {
		return "", typeErr("cannot read %s as string", s.typ)
	}
	return s.str, nil
}

func b2i[T int32 | int64 | uint32 | uint64](b bool) T {
	if b {
		return 1
	}
	return 0
}

// The Set* family replaces a scalar payload, converting between scalar
// kinds where the stored type permits.

func (s *Setting) SetBool(v bool) error {
	switch s.typ {
	case TypeBoolean:
		s.b = v
	case TypeInt, TypeInt64:
		s.i64 = b2i[int64](v)
	default:
		return typeErr("cannot assign bool to %s", s.typ)
	}
	return nil
}

func (s *Setting) SetInt(v int32) error {
	switch s.typ {
	case TypeBoolean:
		s.b = v != 0
	case TypeInt, TypeInt64:
		s.i64 = int64(v)
	case TypeFloat:
		s.f32 = float32(v)
	default:
		return typeErr("cannot assign int to %s", s.typ)
	}
	return nil
}

func (s *Setting) SetInt64(v int64) error {
	switch s.typ {
	case TypeBoolean:
		s.b = v != 0
	case TypeInt:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return typeErr("value %d overflows int32", v)
		}
		s.i64 = v
	case TypeInt64:
		s.i64 = v
	case TypeFloat:
		s.f32 = float32(v)
	default:
		return typeErr("cannot assign int64 to %s", s.typ)
	}
	return nil
}

func (s *Setting) SetFloat(v float32) error {
	switch s.typ {
	case TypeInt:
		if v >= math.MaxInt32+1 || v < math.MinInt32 {
			return typeErr("value %g overflows int32", v)
		}
		s.i64 = int64(v)
	case TypeInt64:
		if v >= math.MaxInt64+1 || v < math.MinInt64 {
			return typeErr("value %g overflows int64", v)
		}
		s.i64 = int64(v)
	case TypeFloat:
		s.f32 = v
	default:
		return typeErr("cannot assign float to %s", s.typ)
	}
	return nil
}

func (s *Setting) SetString(v string) error {
	if s.typ != TypeString {
		return typeErr("cannot assign string to %s", s.typ)
	}
	s.str = v
	return nil
}
