package prefs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultPath returns the standard preferences file location:
// $XDG_CONFIG_HOME/vital-pulse/prefs.toml, falling back to
// ~/.config/vital-pulse/prefs.toml.
func DefaultPath() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "vital-pulse", "prefs.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vital-pulse", "prefs.toml")
}

// Store reads and writes the preferences file.
type Store struct {
	path string
}

// NewStore returns a store over the given path. An empty path uses
// DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Load reads preferences from disk. A missing file yields defaults, not an
// error; unrecognized values are replaced field-wise with defaults.
func (s *Store) Load() (Prefs, error) {
	var p Prefs
	if _, err := toml.DecodeFile(s.path, &p); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	return p.normalize(), nil
}

// Save writes preferences to disk, creating the parent directory as needed.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p.normalize())
}
