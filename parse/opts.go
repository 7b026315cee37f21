package parse

// DefaultMaxIncludeDepth bounds @include recursion; exceeding it is a
// file i/o error.
const DefaultMaxIncludeDepth = 64

type parseOpts struct {
	filename   string
	includeDir string
	fsys       FS
	maxDepth   int
}

type Option func(*parseOpts)

// WithFilename sets the file name recorded in token coordinates for
// in-memory input.
func WithFilename(name string) Option {
	return func(o *parseOpts) { o.filename = name }
}

// WithIncludeDir sets the directory non-absolute @include paths resolve
// against. The default is the process working directory.
func WithIncludeDir(dir string) Option {
	return func(o *parseOpts) { o.includeDir = dir }
}

// WithFS sets the filesystem collaborator. The default reads from the
// host filesystem.
func WithFS(fsys FS) Option {
	return func(o *parseOpts) { o.fsys = fsys }
}

// WithMaxIncludeDepth overrides DefaultMaxIncludeDepth.
func WithMaxIncludeDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newOpts(opts []Option) *parseOpts {
	o := &parseOpts{
		includeDir: ".",
		fsys:       OSFS,
		maxDepth:   DefaultMaxIncludeDepth,
	}
	for _, f := range opts {
		f(o)
	}
	return o
}
