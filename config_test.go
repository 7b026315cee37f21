package libconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/libconfig/go-libconfig/setting"
)

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "app.cfg")
	if err := os.WriteFile(in, []byte(`
server = {
    host = "localhost";
    port = 8080;
    timeouts = [1, 2, 3];
};
debug = false;
`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := FromFile(in)
	if err != nil {
		t.Fatal(err)
	}
	port, err := cfg.LookupInt("server.port")
	if err != nil {
		t.Fatal(err)
	}
	if port != 8080 {
		t.Errorf("port %d", port)
	}
	host, _ := cfg.LookupString("server.host")
	if host != "localhost" {
		t.Errorf("host %q", host)
	}

	out := filepath.Join(dir, "out.cfg")
	if err := cfg.WriteFile(out); err != nil {
		t.Fatal(err)
	}
	cfg2, err := FromFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !setting.Equal(cfg.Root(), cfg2.Root()) {
		t.Error("write/read round trip changed the tree")
	}
}

func TestIncludeDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.cfg"), []byte("u = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.cfg"), []byte("@include \"b.cfg\"\nv = 2;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := New()
	cfg.SetIncludeDir(dir)
	if cfg.IncludeDir() != dir {
		t.Errorf("include dir %q", cfg.IncludeDir())
	}
	if err := cfg.ReadFile("a.cfg"); err != nil {
		t.Fatal(err)
	}
	u, err := cfg.LookupInt("u")
	if err != nil {
		t.Fatal(err)
	}
	v, err := cfg.LookupInt("v")
	if err != nil {
		t.Fatal(err)
	}
	if u != 1 || v != 2 {
		t.Errorf("u=%d v=%d", u, v)
	}
}

func TestReadFileMissing(t *testing.T) {
	cfg := New()
	cfg.SetIncludeDir(t.TempDir())
	err := cfg.ReadFile("nope.cfg")
	if !errors.Is(err, ErrFileIO) {
		t.Errorf("got %v", err)
	}
	// failed read leaves the tree unchanged
	if cfg.Root().Len() != 0 {
		t.Error("tree mutated on failed read")
	}
}

func TestReadStringReplaces(t *testing.T) {
	cfg := New()
	if err := cfg.ReadString("a = 1;"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ReadString("b = 2;"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := cfg.Exists("a"); ok {
		t.Error("old tree survived ReadString")
	}
	if ok, _ := cfg.Exists("b"); !ok {
		t.Error("new tree missing")
	}
}

func TestProgrammaticBuild(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.SetIncludeDir(dir)
	srv, err := cfg.Root().Add("server", setting.TypeGroup)
	if err != nil {
		t.Fatal(err)
	}
	port, err := srv.Add("port", setting.TypeInt)
	if err != nil {
		t.Fatal(err)
	}
	if err := port.SetInt(9090); err != nil {
		t.Fatal(err)
	}
	mask, err := srv.Add("mask", setting.TypeInt)
	if err != nil {
		t.Fatal(err)
	}
	mask.SetInt(255)
	mask.SetFormat(setting.FormatHex)

	if err := cfg.WriteFile("gen.cfg"); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(filepath.Join(dir, "gen.cfg"))
	if err != nil {
		t.Fatal(err)
	}
	want := "server = {\n    mask = 0xff;\n    port = 9090;\n};\n"
	if string(d) != want {
		t.Errorf("written file:\n--- got ---\n%s\n--- want ---\n%s", d, want)
	}
}
