package setting

import "fmt"

type Type int

const (
	TypeNone Type = iota
	TypeInt
	TypeInt64
	TypeFloat
	TypeString
	TypeBoolean
	TypeArray
	TypeList
	TypeGroup
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TypeNone:    "None",
		TypeInt:     "Int",
		TypeInt64:   "Int64",
		TypeFloat:   "Float",
		TypeString:  "String",
		TypeBoolean: "Boolean",
		TypeArray:   "Array",
		TypeList:    "List",
		TypeGroup:   "Group",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"None":    TypeNone,
		"Int":     TypeInt,
		"Int64":   TypeInt64,
		"Float":   TypeFloat,
		"String":  TypeString,
		"Boolean": TypeBoolean,
		"Array":   TypeArray,
		"List":    TypeList,
		"Group":   TypeGroup,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		TypeInt,
		TypeInt64,
		TypeFloat,
		TypeString,
		TypeBoolean,
		TypeArray,
		TypeList,
		TypeGroup,
	}
}

func (t Type) IsScalar() bool {
	switch t {
	case TypeInt, TypeInt64, TypeFloat, TypeString, TypeBoolean:
		return true
	default:
		return false
	}
}

func (t Type) IsNumber() bool {
	switch t {
	case TypeInt, TypeInt64, TypeFloat:
		return true
	default:
		return false
	}
}

func (t Type) IsAggregate() bool {
	switch t {
	case TypeArray, TypeList, TypeGroup:
		return true
	default:
		return false
	}
}

// Format is the display hint for integer scalars.
type Format int

const (
	FormatDefault Format = iota
	FormatHex
)

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "Hex"
	default:
		return "Default"
	}
}
