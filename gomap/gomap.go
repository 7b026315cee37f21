package gomap

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/libconfig/go-libconfig/setting"
)

var ErrValue = errors.New("unrepresentable value")

// ToAny projects the subtree rooted at s onto native Go values: groups
// to map[string]any, lists and arrays to []any, Int to int, Int64 to
// int64, Float to float64, and the rest to their obvious kinds.
func ToAny(s *setting.Setting) any {
	switch s.Type() {
	case setting.TypeGroup:
		res := make(map[string]any, s.Len())
		for i := 0; i < s.Len(); i++ {
			c, _ := s.At(i)
			res[c.Name()] = ToAny(c)
		}
		return res
	case setting.TypeList, setting.TypeArray:
		res := make([]any, s.Len())
		for i := 0; i < s.Len(); i++ {
			c, _ := s.At(i)
			res[i] = ToAny(c)
		}
		return res
	case setting.TypeBoolean:
		v, _ := s.Bool()
		return v
	case setting.TypeInt:
		v, _ := s.Int()
		return int(v)
	case setting.TypeInt64:
		v, _ := s.Int64()
		return v
	case setting.TypeFloat:
		v, _ := s.Float64()
		return v
	case setting.TypeString:
		v, _ := s.Str()
		return v
	default:
		return nil
	}
}

// FromAny builds a setting named name from v. Maps become groups with
// sorted keys; slices of same-typed scalars become arrays and mixed or
// nested slices become lists; json.Number becomes Int, Int64 or Float
// depending on range. Nil and unsupported kinds are errors: the format
// has no null.
func FromAny(name string, v any) (*setting.Setting, error) {
	switch t := v.(type) {
	case map[string]any:
		g := setting.New(name, setting.TypeGroup)
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c, err := FromAny(k, t[k])
			if err != nil {
				return nil, err
			}
			if err := g.AddChild(c); err != nil {
				return nil, err
			}
		}
		return g, nil
	case []any:
		elts := make([]*setting.Setting, len(t))
		arrayOK := len(t) > 0
		for i, e := range t {
			c, err := FromAny("", e)
			if err != nil {
				return nil, err
			}
			elts[i] = c
			if !c.IsScalar() || c.Type() != elts[0].Type() {
				arrayOK = false
			}
		}
		typ := setting.TypeList
		if arrayOK {
			typ = setting.TypeArray
		}
		l := setting.New(name, typ)
		for _, c := range elts {
			if err := l.AddChild(c); err != nil {
				return nil, err
			}
		}
		return l, nil
	case bool:
		return setting.NewBool(name, t), nil
	case int:
		return fromInt64(name, int64(t)), nil
	case int32:
		return setting.NewInt(name, t), nil
	case int64:
		return fromInt64(name, t), nil
	case float32:
		return setting.NewFloat(name, t), nil
	case float64:
		return setting.NewFloat(name, float32(t)), nil
	case string:
		return setting.NewString(name, t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return fromInt64(name, i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrValue, t.String())
		}
		return setting.NewFloat(name, float32(f)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrValue, v)
	}
}

func fromInt64(name string, v int64) *setting.Setting {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return setting.NewInt(name, int32(v))
	}
	return setting.NewInt64(name, v)
}
