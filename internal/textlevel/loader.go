package textlevel

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads text levels from a directory tree of .txt and .nlp files.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll scans the tree and parses every supported file, sorted by path
// for deterministic ordering. Parse failures are returned per file, keyed
// by path, so one bad file does not hide the rest.
func (l *Loader) LoadAll() ([]LevelDef, map[string]error, error) {
	var paths []string
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".txt" || ext == ".nlp" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("textlevel: walking %s: %w", l.Root, err)
	}
	sort.Strings(paths)

	var defs []LevelDef
	failures := make(map[string]error)
	for _, path := range paths {
		loaded, err := LoadFile(path)
		if err != nil {
			failures[path] = err
			continue
		}
		defs = append(defs, loaded...)
	}
	return defs, failures, nil
}

// LoadFile parses one .txt or .nlp file into its levels.
func LoadFile(path string) ([]LevelDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textlevel: reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".nlp":
		_, defs, err := ParsePack(data)
		if err != nil {
			return nil, fmt.Errorf("textlevel: parsing pack %s: %w", path, err)
		}
		return defs, nil
	case ".txt":
		def, err := ParseLevel(data)
		if err != nil {
			return nil, fmt.Errorf("textlevel: parsing %s: %w", path, err)
		}
		return []LevelDef{def}, nil
	}
	return nil, fmt.Errorf("textlevel: unsupported extension: %s", path)
}
