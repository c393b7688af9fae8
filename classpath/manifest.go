package classpath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a classpath.toml configuration listing classpath entries.
type Manifest struct {
	Classpath Entries `toml:"classpath"`

	// Dir is the directory containing the manifest file (set at load time).
	Dir string `toml:"-"`
}

// Entries configures where class files are found.
type Entries struct {
	// Paths are directories or jar files, searched in order. Relative
	// paths are resolved against the manifest's directory.
	Paths []string `toml:"paths"`
}

// LoadManifest parses a classpath.toml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// ResolvedPaths returns the configured entries with relative paths
// resolved against the manifest directory.
func (m *Manifest) ResolvedPaths() []string {
	paths := make([]string, len(m.Classpath.Paths))
	for i, p := range m.Classpath.Paths {
		if filepath.IsAbs(p) {
			paths[i] = p
		} else {
			paths[i] = filepath.Join(m.Dir, p)
		}
	}
	return paths
}
