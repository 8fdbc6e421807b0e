package template

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is the declared kind every chat template must carry in its
// frontmatter `type` field.
const Kind = "chat-template"

// Template represents a parsed chat-template document.
type Template struct {
	// Metadata from frontmatter
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Meta holds the full decoded header, including keys beyond the
	// typed fields above.
	Meta map[string]any `yaml:"-"`

	// Body is the template text after the header, trimmed.
	Body string `yaml:"-"`

	// Source describes where the template was loaded from, for display:
	// "project", "global", "built-in", or a file path.
	Source string `yaml:"-"`
}

// Parse splits src into a frontmatter header and body, decodes the
// header, and validates the declared kind.
//
// A header that is not valid YAML fails with *HeaderError. A missing
// header, or a `type` other than Kind, fails with *KindError.
func Parse(src string) (*Template, error) {
	header, body := splitFrontmatter(src)

	var tmpl Template
	if header != "" {
		if err := yaml.Unmarshal([]byte(header), &tmpl.Meta); err != nil {
			return nil, &HeaderError{Cause: err}
		}
		if err := yaml.Unmarshal([]byte(header), &tmpl); err != nil {
			return nil, &HeaderError{Cause: err}
		}
	}

	if tmpl.Type != Kind {
		return nil, &KindError{Declared: declaredKind(tmpl.Type)}
	}

	tmpl.Body = body
	return &tmpl, nil
}

// splitFrontmatter separates the YAML header from the body.
// The header is delimited by --- lines at the very start of the
// document; without a complete fence the whole input is body.
func splitFrontmatter(raw string) (header, body string) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "---") {
		return "", trimmed
	}

	rest := trimmed[3:] // skip opening ---
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", trimmed
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
