package parse

import (
	"os"
	"path/filepath"
)

// FS is the filesystem collaborator used for reading documents and
// expanding includes.
type FS interface {
	// ReadFile returns the contents of the file at name.
	ReadFile(name string) ([]byte, error)
	// ReadDir returns the names of the regular-file entries of dir.
	ReadDir(dir string) ([]string, error)
	// Abs resolves name to a canonical absolute path.
	Abs(name string) (string, error)
}

type osFS struct{}

func (osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (osFS) ReadDir(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ents))
	for _, ent := range ents {
		if !ent.Type().IsRegular() {
			continue
		}
		names = append(names, ent.Name())
	}
	return names, nil
}

func (osFS) Abs(name string) (string, error) {
	return filepath.Abs(name)
}

// OSFS reads from the host filesystem.
var OSFS FS = osFS{}
