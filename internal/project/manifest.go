// Package project locates and parses jsxc.toml, the optional per-project
// configuration for the transformer.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is the decoded jsxc.toml. All fields are optional; command-line
// flags override whatever the manifest sets.
type Manifest struct {
	Transform struct {
		// Pragma is the element-factory expression, e.g. "h" or
		// "Preact.createElement".
		Pragma string `toml:"pragma"`
		// Production omits the __self/__source debug props.
		Production bool `toml:"production"`
		// OutDir is the default output directory for directory transforms.
		OutDir string `toml:"out_dir"`
	} `toml:"transform"`
	Cache struct {
		// Enabled turns the on-disk transform cache on.
		Enabled bool `toml:"enabled"`
	} `toml:"cache"`
}

// FindManifest walks up from startDir to locate jsxc.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "jsxc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest parses a jsxc.toml file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%q: unknown key %q", path, undecoded[0].String())
	}
	return &m, nil
}

// DiscoverManifest finds and parses the nearest jsxc.toml above startDir.
// Returns (nil, "", nil) when no manifest exists.
func DiscoverManifest(startDir string) (*Manifest, string, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, "", err
	}
	m, err := LoadManifest(path)
	if err != nil {
		return nil, "", err
	}
	return m, path, nil
}
