package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ashgrove/chatcmd/internal/output"
	"github.com/ashgrove/chatcmd/internal/store"
	"github.com/ashgrove/chatcmd/internal/template"
)

// showResult is the JSON payload for the show command.
type showResult struct {
	Name        string         `json:"name"`
	Source      string         `json:"source"`
	Description string         `json:"description"`
	Meta        map[string]any `json:"meta,omitempty"`
	Body        string         `json:"body"`
}

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return newShowCmdInternal(nil)
}

// newShowCmdInternal creates the show command with optional store injection.
func newShowCmdInternal(st *store.Store) *cobra.Command {
	var bodyFlag bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Display a chat template without resolving it",
		Long: `Display a chat template's metadata and raw body, substitution tokens
intact.

Examples:
  chatcmd show review         # Metadata and body
  chatcmd show review --body  # Body only, for piping
  chatcmd show review --json  # Structured output`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, st, args[0], bodyFlag)
		},
	}

	cmd.Flags().BoolVar(&bodyFlag, "body", false, "Print only the template body")

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, st *store.Store, name string, bodyFlag bool) error {
	printer := newPrinter(cmd)

	if st == nil {
		st = store.New()
	}

	tmpl, err := st.Load(name)
	if err != nil {
		coded := codedError(err)
		printer.Error(coded)
		return coded
	}

	if printer.IsJSON() {
		return printer.WriteJSON(showResult{
			Name:        name,
			Source:      tmpl.Source,
			Description: tmpl.Description,
			Meta:        tmpl.Meta,
			Body:        tmpl.Body,
		})
	}

	if bodyFlag {
		printer.Println(tmpl.Body)
		return nil
	}

	outputShowHuman(printer, name, tmpl)
	return nil
}

// outputShowHuman renders metadata key/values followed by the body.
func outputShowHuman(printer *output.Printer, name string, tmpl *template.Template) {
	printer.KeyValue("Name", name)
	printer.KeyValue("Source", tmpl.Source)
	if tmpl.Description != "" {
		printer.KeyValue("Description", tmpl.Description)
	}

	for _, key := range extraMetaKeys(tmpl.Meta) {
		printer.KeyValue(key, fmt.Sprintf("%v", tmpl.Meta[key]))
	}

	printer.Section("Body")
	printer.Println(tmpl.Body)
}

// extraMetaKeys returns sorted metadata keys beyond the typed fields.
func extraMetaKeys(meta map[string]any) []string {
	var keys []string
	for key := range meta {
		switch key {
		case "type", "name", "description":
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
