// Package prefs stores flat key/value user preferences for chatcmd.
// Preferences persist as a YAML file in the configuration directory;
// a missing file is an empty store.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ashgrove/chatcmd/internal/config"
)

// fileName is the preferences file inside the config directory.
const fileName = "prefs.yaml"

// Prefs is an in-memory view of the preferences file. It is not safe
// for concurrent use; CLI invocations are single-threaded.
type Prefs struct {
	path   string
	values map[string]string
}

// Load reads preferences from the default location.
func Load() (*Prefs, error) {
	dir := config.Dir()
	if dir == "" {
		return nil, fmt.Errorf("no configuration directory available")
	}
	return LoadFile(filepath.Join(dir, fileName))
}

// LoadFile reads preferences from an explicit path. A missing file
// yields an empty store; a file that is not a flat YAML mapping is an
// error.
func LoadFile(path string) (*Prefs, error) {
	prefs := &Prefs{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return nil, fmt.Errorf("reading preferences %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &prefs.values); err != nil {
		return nil, fmt.Errorf("parsing preferences %s: %w", path, err)
	}
	return prefs, nil
}

// Get returns the value for key and whether it is set.
func (p *Prefs) Get(key string) (string, bool) {
	value, ok := p.values[key]
	return value, ok
}

// Set stores a value for key. Call Save to persist.
func (p *Prefs) Set(key, value string) {
	p.values[key] = value
}

// Unset removes key, reporting whether it was present.
func (p *Prefs) Unset(key string) bool {
	_, ok := p.values[key]
	delete(p.values, key)
	return ok
}

// Keys returns all set keys in sorted order.
func (p *Prefs) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for key := range p.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the preferences back to disk, creating the config
// directory if needed.
func (p *Prefs) Save() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}

	data, err := yaml.Marshal(p.values)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences %s: %w", p.path, err)
	}
	return nil
}
