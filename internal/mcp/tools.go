package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ashgrove/chatcmd/internal/store"
)

// --- Resolve tool ---

// ResolveInput is the input for the resolve tool.
type ResolveInput struct {
	Name string   `json:"name"           jsonschema:"template name"`
	Args []string `json:"args,omitempty" jsonschema:"arguments substituted into the template tokens"`
}

// ResolveOutput is the output for the resolve tool.
type ResolveOutput struct {
	Name   string `json:"name"   jsonschema:"template name"`
	Source string `json:"source" jsonschema:"where the template was loaded from"`
	Text   string `json:"text"   jsonschema:"resolved template text"`
}

func handleResolve(st *store.Store) mcp.ToolHandlerFor[ResolveInput, ResolveOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ResolveInput) (*mcp.CallToolResult, ResolveOutput, error) {
		if input.Name == "" {
			return nil, ResolveOutput{}, errors.New("name is required")
		}

		tmpl, err := st.Load(input.Name)
		if err != nil {
			return nil, ResolveOutput{}, fmt.Errorf("loading template: %w", err)
		}

		out := ResolveOutput{
			Name:   input.Name,
			Source: tmpl.Source,
			Text:   tmpl.Render(input.Args),
		}
		return nil, out, nil
	}
}

// --- List tool ---

// ListInput is the input for the list tool (no parameters needed).
type ListInput struct{}

// TemplateSummary is one template in a listing.
type TemplateSummary struct {
	Name        string `json:"name"                jsonschema:"template name"`
	Description string `json:"description"         jsonschema:"template description from frontmatter"`
	Source      string `json:"source"              jsonschema:"project, global, or built-in"`
	Overrides   string `json:"overrides,omitempty" jsonschema:"set when a built-in is shadowed by this source"`
}

// ListOutput is the output for the list tool.
type ListOutput struct {
	Templates []TemplateSummary `json:"templates" jsonschema:"available templates"`
}

func handleList(st *store.Store) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListOutput, error) {
		infos := st.List()
		summaries := make([]TemplateSummary, 0, len(infos))
		for _, info := range infos {
			summaries = append(summaries, TemplateSummary{
				Name:        info.Name,
				Description: info.Description,
				Source:      info.Source,
				Overrides:   info.Overrides,
			})
		}
		return nil, ListOutput{Templates: summaries}, nil
	}
}

// --- Show tool ---

// ShowInput is the input for the show tool.
type ShowInput struct {
	Name string `json:"name" jsonschema:"template name"`
}

// ShowOutput is the output for the show tool.
type ShowOutput struct {
	Name        string         `json:"name"           jsonschema:"template name"`
	Source      string         `json:"source"         jsonschema:"where the template was loaded from"`
	Description string         `json:"description"    jsonschema:"template description from frontmatter"`
	Meta        map[string]any `json:"meta,omitempty" jsonschema:"full frontmatter metadata"`
	Body        string         `json:"body"           jsonschema:"raw template body with tokens intact"`
}

func handleShow(st *store.Store) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		if input.Name == "" {
			return nil, ShowOutput{}, errors.New("name is required")
		}

		tmpl, err := st.Load(input.Name)
		if err != nil {
			return nil, ShowOutput{}, fmt.Errorf("loading template: %w", err)
		}

		out := ShowOutput{
			Name:        input.Name,
			Source:      tmpl.Source,
			Description: tmpl.Description,
			Meta:        tmpl.Meta,
			Body:        tmpl.Body,
		}
		return nil, out, nil
	}
}
