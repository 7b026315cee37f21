package encode

import (
	"strings"
	"testing"

	"github.com/libconfig/go-libconfig/parse"
	"github.com/libconfig/go-libconfig/setting"
)

func reparse(t *testing.T, text string) *setting.Setting {
	t.Helper()
	root, err := parse.Parse([]byte(text))
	if err != nil {
		t.Fatalf("re-parse failed: %v\ntext:\n%s", err, text)
	}
	return root
}

func TestCanonicalForm(t *testing.T) {
	in := `
s = "a\tb";
g = { b = { c = 0xff; }; a = 1; };
list = (1, "two", 3.0, { x = true; });
arr = [1, 2, 3];
y = 255L;
`
	want := `arr = [1, 2, 3];
g = {
    a = 1;
    b = {
        c = 0xff;
    };
};
list = (
    1,
    "two",
    3.0,
    {
        x = true;
    }
);
s = "a\tb";
y = 255L;
`
	root := reparse(t, in)
	got := MustString(root)
	if got != want {
		t.Errorf("canonical form mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"a = 1;",
		"a = -1; b = +2;",
		"a = 1.5; b = 2e8; c = 1.;",
		"x = 0xFF; y = 0xFFL; z = 0x7fffffff;",
		"neg = -1; neghex = 0xffffffff;",
		"big = 9223372036854775807L; small = -9223372036854775808L;",
		"t = true; f = false;",
		`s = ""; q = "say \"hi\""; w = "tab\there";`,
		"g = { a = 1; b = { c = 2; }; };",
		"arr = [1, 2, 3]; farr = [1.5, 2.5]; sarr = [\"a\", \"b\"];",
		"l = (); e = []; g = {};",
		"l = (1, (2, 3), [4, 5], { x = 6; }, \"s\");",
		"deep = { a = { b = { c = { d = (1, { e = [1]; }); }; }; }; };",
	}
	for _, in := range inputs {
		root, err := parse.Parse([]byte(in))
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		// P1: parse(print(T)) equals T
		printed := MustString(root)
		back := reparse(t, printed)
		if !setting.Equal(root, back) {
			t.Errorf("%q: round trip changed the tree:\n%s", in, printed)
			continue
		}
		// P2: print(parse(print(T))) == print(T)
		if again := MustString(back); again != printed {
			t.Errorf("%q: print not idempotent:\n--- first ---\n%s\n--- second ---\n%s", in, printed, again)
		}
	}
}

func TestFloatAlwaysFloat(t *testing.T) {
	root := reparse(t, "f = 3.0; g = 1.; h = 2e8; i = 0.5;")
	printed := MustString(root)
	if !strings.Contains(printed, "f = 3.0;") {
		t.Errorf("whole float printed badly:\n%s", printed)
	}
	if strings.Contains(printed, "g = 1.;") {
		t.Errorf("trailing-dot float emitted:\n%s", printed)
	}
	back := reparse(t, printed)
	for _, name := range []string{"f", "g", "h", "i"} {
		s, err := back.Lookup(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s.Type() != setting.TypeFloat {
			t.Errorf("%s re-parsed as %s", name, s.Type())
		}
	}
}

func TestHexFormats(t *testing.T) {
	root := reparse(t, "x = 0xFF; y = 0xFFL; d = 255; dl = 255L;")
	printed := MustString(root)
	for _, want := range []string{"x = 0xff;", "y = 0xffL;", "d = 255;", "dl = 255L;"} {
		if !strings.Contains(printed, want) {
			t.Errorf("missing %q in:\n%s", want, printed)
		}
	}
	back := reparse(t, printed)
	x, _ := back.Lookup("x")
	if x.Format() != setting.FormatHex {
		t.Error("hex hint lost across round trip")
	}
	d, _ := back.Lookup("d")
	if d.Format() != setting.FormatDefault {
		t.Error("decimal int gained a hex hint")
	}
}

func TestEmptyRoot(t *testing.T) {
	root := reparse(t, "")
	if got := MustString(root); got != "" {
		t.Errorf("empty root printed %q", got)
	}
}

func TestEncodeSubtree(t *testing.T) {
	root := reparse(t, "g = { a = 1; };")
	g, _ := root.Lookup("g")
	got := MustString(g)
	want := "g = {\n    a = 1;\n}"
	if got != want {
		t.Errorf("subtree:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
	a, _ := root.Lookup("g.a")
	if got := MustString(a); got != "a = 1" {
		t.Errorf("scalar member: %q", got)
	}
}

func TestEncodeColorsPlain(t *testing.T) {
	// the color table only decorates; structure is unchanged when the
	// default passthrough is used
	c := &Colors{Default: colorDefault, Map: map[Colorable]func(string, ...any) string{}}
	root := reparse(t, "a = 1; s = \"v\";")
	var sb strings.Builder
	if err := Encode(root, &sb, EncodeColors(c)); err != nil {
		t.Fatal(err)
	}
	if sb.String() != MustString(root) {
		t.Error("passthrough colors changed the output")
	}
}
