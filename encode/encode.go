package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/libconfig/go-libconfig/setting"
	"github.com/libconfig/go-libconfig/token"
)

type EncState struct {
	depth  int
	indent int

	Color func(setting.Type, ColorAttr, string) string
}

// Encode writes the textual form of s to w. A root-level anonymous
// group is written as a bare sequence of members; everything else is
// written the way it would appear as a group member, without a
// trailing terminator or newline at the top level.
func Encode(s *setting.Setting, w io.Writer, opts ...Option) error {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	if s.IsRoot() && s.Name() == "" && s.Type() == setting.TypeGroup {
		return encodeRoot(s, w, es)
	}
	return encodeMember(s, w, es)
}

func encodeRoot(s *setting.Setting, w io.Writer, es *EncState) error {
	for i := 0; i < s.Len(); i++ {
		c, err := s.At(i)
		if err != nil {
			return err
		}
		if err := writeString(w, indentString(es)); err != nil {
			return err
		}
		if err := encodeMember(c, w, es); err != nil {
			return err
		}
		if err := writeSep(w, es, c.Type(), ";\n"); err != nil {
			return err
		}
	}
	return nil
}

// encodeMember writes "name = value" for named settings and the bare
// value for anonymous ones.
func encodeMember(s *setting.Setting, w io.Writer, es *EncState) error {
	if s.Name() != "" {
		name := s.Name()
		if es.Color != nil {
			name = es.Color(s.Type(), FieldColor, name)
		}
		if err := writeString(w, name); err != nil {
			return err
		}
		if err := writeSep(w, es, s.Type(), " = "); err != nil {
			return err
		}
	}
	return encodeValue(s, w, es)
}

func encodeValue(s *setting.Setting, w io.Writer, es *EncState) error {
	switch s.Type() {
	case setting.TypeGroup:
		return encodeGroup(s, w, es)
	case setting.TypeList:
		return encodeList(s, w, es)
	case setting.TypeArray:
		return encodeArray(s, w, es)
	case setting.TypeInt, setting.TypeInt64, setting.TypeFloat,
		setting.TypeString, setting.TypeBoolean:
		return encodeScalar(s, w, es)
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrEncoding, s.Type())
	}
}

func encodeGroup(s *setting.Setting, w io.Writer, es *EncState) error {
	if s.Len() == 0 {
		return writeSep(w, es, s.Type(), "{}")
	}
	if err := writeSep(w, es, s.Type(), "{\n"); err != nil {
		return err
	}
	es.depth++
	for i := 0; i < s.Len(); i++ {
		c, err := s.At(i)
		if err != nil {
			return err
		}
		if err := writeString(w, indentString(es)); err != nil {
			return err
		}
		if err := encodeMember(c, w, es); err != nil {
			return err
		}
		if err := writeSep(w, es, c.Type(), ";\n"); err != nil {
			return err
		}
	}
	es.depth--
	return writeSep(w, es, s.Type(), indentString(es)+"}")
}

func encodeList(s *setting.Setting, w io.Writer, es *EncState) error {
	if s.Len() == 0 {
		return writeSep(w, es, s.Type(), "()")
	}
	if err := writeSep(w, es, s.Type(), "(\n"); err != nil {
		return err
	}
	es.depth++
	for i := 0; i < s.Len(); i++ {
		c, err := s.At(i)
		if err != nil {
			return err
		}
		if err := writeString(w, indentString(es)); err != nil {
			return err
		}
		if err := encodeMember(c, w, es); err != nil {
			return err
		}
		if i < s.Len()-1 {
			if err := writeSep(w, es, c.Type(), ","); err != nil {
				return err
			}
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	es.depth--
	return writeSep(w, es, s.Type(), indentString(es)+")")
}

func encodeArray(s *setting.Setting, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, s.Type(), "["); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		c, err := s.At(i)
		if err != nil {
			return err
		}
		if i > 0 {
			if err := writeSep(w, es, s.Type(), ", "); err != nil {
				return err
			}
		}
		if err := encodeScalar(c, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, s.Type(), "]")
}

func encodeScalar(s *setting.Setting, w io.Writer, es *EncState) error {
	v, err := scalarText(s)
	if err != nil {
		return err
	}
	if es.Color != nil {
		v = es.Color(s.Type(), ValueColor, v)
	}
	return writeString(w, v)
}

func scalarText(s *setting.Setting) (string, error) {
	switch s.Type() {
	case setting.TypeBoolean:
		v, _ := s.Bool()
		if v {
			return "true", nil
		}
		return "false", nil
	case setting.TypeInt:
		v, _ := s.Int()
		if s.Format() == setting.FormatHex {
			return fmt.Sprintf("0x%x", uint32(v)), nil
		}
		return strconv.FormatInt(int64(v), 10), nil
	case setting.TypeInt64:
		v, _ := s.Int64()
		if s.Format() == setting.FormatHex {
			return fmt.Sprintf("0x%xL", uint64(v)), nil
		}
		return strconv.FormatInt(v, 10) + "L", nil
	case setting.TypeFloat:
		v, _ := s.Float()
		return formatFloat(v), nil
	case setting.TypeString:
		v, _ := s.Str()
		return token.Quote(v), nil
	default:
		return "", fmt.Errorf("%w: %s is not scalar", ErrEncoding, s.Type())
	}
}

// formatFloat renders the shortest text that reads back as the same
// 32-bit value, always with a '.' or exponent so the literal stays a
// float on re-parse.
func formatFloat(v float32) string {
	res := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if strings.ContainsAny(res, ".eE") {
		return res
	}
	return res + ".0"
}

func indentString(es *EncState) string {
	return strings.Repeat(" ", es.indent*es.depth)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSep(w io.Writer, es *EncState, t setting.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(t, SepColor, sep)
	}
	return writeString(w, sep)
}
