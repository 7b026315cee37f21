package encode

import (
	"strings"

	"github.com/libconfig/go-libconfig/setting"

	"github.com/fatih/color"
)

type Colorable struct {
	Type setting.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range setting.Types() {
		able := Colorable{Type: t, Attr: FieldColor}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(128, 128, 128).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = setting.TypeInt
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = setting.TypeInt64
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = setting.TypeFloat
	colors.Map[able] = color.RGB(168, 196, 236).SprintfFunc()

	able.Type = setting.TypeBoolean
	colors.Map[able] = color.CyanString

	able.Type = setting.TypeString
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		f := f
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t setting.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t setting.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
