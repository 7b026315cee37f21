package libconfig

import (
	"os"

	"github.com/libconfig/go-libconfig/encode"
	"github.com/libconfig/go-libconfig/parse"
	"github.com/libconfig/go-libconfig/setting"
)

// ErrFileIO is the file i/o error kind shared with the parse package.
var ErrFileIO = parse.ErrFileIO

// Config owns a document: the root group, the include directory, and
// the file entry points.
type Config struct {
	root       *setting.Setting
	includeDir string
	fsys       parse.FS
}

// New returns an empty document whose include directory is the process
// working directory.
func New() *Config {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return &Config{
		root:       setting.NewRoot(),
		includeDir: dir,
		fsys:       parse.OSFS,
	}
}

// FromFile parses path into a new document.
func FromFile(path string) (*Config, error) {
	c := New()
	if err := c.ReadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// SetIncludeDir sets the directory against which non-absolute document
// and @include paths resolve.
func (c *Config) SetIncludeDir(dir string) {
	c.includeDir = dir
}

func (c *Config) IncludeDir() string {
	return c.includeDir
}

// SetFS replaces the filesystem collaborator used for reading.
func (c *Config) SetFS(fsys parse.FS) {
	c.fsys = fsys
}

// Root returns the mutable root group.
func (c *Config) Root() *setting.Setting {
	return c.root
}

// ReadFile parses path and replaces the current tree. The tree is left
// unchanged when parsing fails.
func (c *Config) ReadFile(path string) error {
	root, err := parse.ParseFile(path,
		parse.WithIncludeDir(c.includeDir),
		parse.WithFS(c.fsys))
	if err != nil {
		return err
	}
	c.root = root
	return nil
}

// ReadString parses in-memory text and replaces the current tree.
func (c *Config) ReadString(s string) error {
	root, err := parse.Parse([]byte(s),
		parse.WithIncludeDir(c.includeDir),
		parse.WithFS(c.fsys))
	if err != nil {
		return err
	}
	c.root = root
	return nil
}

// WriteFile pretty-prints the tree to path, truncating any existing
// file. A non-absolute path resolves against the include directory.
func (c *Config) WriteFile(path string) error {
	resolved := path
	if len(path) == 0 || path[0] != '/' {
		resolved = c.includeDir + "/" + path
	}
	f, err := os.Create(resolved)
	if err != nil {
		return &parse.FileError{Path: resolved, Err: err}
	}
	if err := encode.Encode(c.root, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &parse.FileError{Path: resolved, Err: err}
	}
	return nil
}

// Lookup resolves a path against the root.
func (c *Config) Lookup(path string) (*setting.Setting, error) {
	return c.root.Lookup(path)
}

// Exists reports whether path resolves.
func (c *Config) Exists(path string) (bool, error) {
	return c.root.Exists(path)
}

// Typed lookups combining path resolution with scalar conversion.

func (c *Config) LookupBool(path string) (bool, error) {
	s, err := c.root.Lookup(path)
	if err != nil {
		return false, err
	}
	return s.Bool()
}

func (c *Config) LookupInt(path string) (int32, error) {
	s, err := c.root.Lookup(path)
	if err != nil {
		return 0, err
	}
	return s.Int()
}

func (c *Config) LookupInt64(path string) (int64, error) {
	s, err := c.root.Lookup(path)
	if err != nil {
		return 0, err
	}
	return s.Int64()
}

func (c *Config) LookupFloat(path string) (float32, error) {
	s, err := c.root.Lookup(path)
	if err != nil {
		return 0, err
	}
	return s.Float()
}

func (c *Config) LookupFloat64(path string) (float64, error) {
	s, err := c.root.Lookup(path)
	if err != nil {
		return 0, err
	}
	return s.Float64()
}

func (c *Config) LookupString(path string) (string, error) {
	s, err := c.root.Lookup(path)
	if err != nil {
		return "", err
	}
	return s.Str()
}
