package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ashgrove/chatcmd/internal/config"
	"github.com/ashgrove/chatcmd/internal/template"
)

// ErrNotFound is returned when no source provides the named template.
var ErrNotFound = errors.New("template not found")

// Info provides template metadata for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`              // "built-in", "global", or "project"
	Overrides   string `json:"overrides,omitempty"` // empty or name of the source shadowing this one
}

// Store loads named chat templates from the project directory, the
// user's global directory, and built-ins, in that order. Parsed
// templates are cached by path until Invalidate is called.
type Store struct {
	projectDir string
	globalDir  string

	mu    sync.Mutex
	cache map[string]*template.Template
}

// New creates a Store over the default template directories.
func New() *Store {
	return NewWithDirs(config.ProjectCommandsDir(), config.CommandsDir())
}

// NewWithDirs creates a Store over explicit directories. Either may be
// empty to skip that source.
func NewWithDirs(projectDir, globalDir string) *Store {
	return &Store{
		projectDir: projectDir,
		globalDir:  globalDir,
		cache:      make(map[string]*template.Template),
	}
}

// Load finds and parses a template by name.
// Resolution order: project-local, then user global, then built-in.
// A file that exists but fails to parse surfaces its parse error rather
// than falling through, so a wrong declared kind is never reported as
// "not found".
func (s *Store) Load(name string) (*template.Template, error) {
	for _, src := range []struct {
		dir    string
		source string
	}{
		{s.projectDir, "project"},
		{s.globalDir, "global"},
	} {
		if src.dir == "" {
			continue
		}
		tmpl, err := s.loadFromDir(src.dir, name)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		tmpl.Source = src.source
		return tmpl, nil
	}

	if tmpl, err := loadBuiltin(name); err == nil {
		tmpl.Source = "built-in"
		return tmpl, nil
	}

	return nil, fmt.Errorf("template %q: %w", name, ErrNotFound)
}

// LoadPath reads and parses a template from an arbitrary file path.
// Read failures pass through wrapped; they are never retried.
func (s *Store) LoadPath(path string) (*template.Template, error) {
	tmpl, err := s.loadFile(path)
	if err != nil {
		return nil, err
	}
	tmpl.Source = path
	return tmpl, nil
}

// List returns all visible templates. Project and global files shadow
// same-named built-ins; shadowed built-ins are still listed with their
// Overrides field set.
func (s *Store) List() []Info {
	seen := make(map[string]string) // name -> winning source
	var infos []Info

	for _, src := range []struct {
		dir    string
		source string
	}{
		{s.projectDir, "project"},
		{s.globalDir, "global"},
	} {
		for _, info := range s.listDir(src.dir, src.source) {
			if _, exists := seen[info.Name]; exists {
				continue
			}
			seen[info.Name] = src.source
			infos = append(infos, info)
		}
	}

	for _, info := range listBuiltins() {
		if winner, exists := seen[info.Name]; exists {
			info.Overrides = winner
		}
		infos = append(infos, info)
	}

	return infos
}

// Invalidate drops all cached parses. Called by the directory watcher
// and safe to call at any time.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*template.Template)
}

// loadFromDir loads <dir>/<name>.md.
func (s *Store) loadFromDir(dir, name string) (*template.Template, error) {
	return s.loadFile(filepath.Join(dir, name+".md"))
}

// loadFile reads and parses a template file, consulting the cache first.
func (s *Store) loadFile(path string) (*template.Template, error) {
	s.mu.Lock()
	cached, ok := s.cache[path]
	s.mu.Unlock()
	if ok {
		copied := *cached
		return &copied, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := template.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}

	s.mu.Lock()
	s.cache[path] = tmpl
	s.mu.Unlock()

	copied := *tmpl
	return &copied, nil
}

// listDir collects metadata for every .md file in a directory.
// Unreadable or invalid files are skipped; listing is best-effort.
func (s *Store) listDir(dir, source string) []Info {
	if dir == "" {
		return nil
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".md")
		tmpl, err := s.loadFromDir(dir, name)
		if err != nil {
			continue
		}

		infos = append(infos, Info{
			Name:        name,
			Description: tmpl.Description,
			Source:      source,
		})
	}

	return infos
}
