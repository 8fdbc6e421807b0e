package store

import (
	"embed"
	"fmt"
	"strings"

	"github.com/ashgrove/chatcmd/internal/template"
)

//go:embed builtins/*.md
var builtinFS embed.FS

// loadBuiltin loads a built-in template by name.
func loadBuiltin(name string) (*template.Template, error) {
	path := "builtins/" + name + ".md"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	return template.Parse(string(data))
}

// listBuiltins returns info for all built-in templates.
func listBuiltins() []Info {
	dirEntries, err := builtinFS.ReadDir("builtins")
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".md")
		tmpl, err := loadBuiltin(name)
		if err != nil {
			continue
		}

		infos = append(infos, Info{
			Name:        name,
			Description: tmpl.Description,
			Source:      "built-in",
		})
	}

	return infos
}
