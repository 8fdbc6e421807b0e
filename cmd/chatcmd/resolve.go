package main

import (
	"github.com/spf13/cobra"

	"github.com/ashgrove/chatcmd/internal/output"
	"github.com/ashgrove/chatcmd/internal/store"
	"github.com/ashgrove/chatcmd/internal/template"
)

// resolveResult is the JSON payload for a successful resolution.
type resolveResult struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Text   string `json:"text"`
}

// newResolveCmd creates the resolve command.
func newResolveCmd() *cobra.Command {
	return newResolveCmdInternal(nil)
}

// newResolveCmdInternal creates the resolve command with optional store
// injection. If st is nil, the default store is created when the
// command runs.
func newResolveCmdInternal(st *store.Store) *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "resolve [<name>] [args...]",
		Short: "Resolve a chat template with arguments",
		Long: `Resolve a chat template: substitute arguments into its $ARGUMENTS and
positional $1, $2, ... tokens and print the resolved text.

Examples:
  chatcmd resolve review error handling        # Built-in or project template
  chatcmd resolve explain goroutines beginner  # $1=goroutines $2=beginner
  chatcmd resolve --file ./draft.md some args  # Arbitrary file by path
  chatcmd resolve review --json                # Structured output`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, st, args, fileFlag)
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Resolve a template file by path instead of name")

	return cmd
}

// runResolve executes the resolve command.
func runResolve(cmd *cobra.Command, st *store.Store, args []string, fileFlag string) error {
	printer := newPrinter(cmd)

	if st == nil {
		st = store.New()
	}

	name, tmpl, tmplArgs, err := loadResolveTarget(st, args, fileFlag)
	if err != nil {
		coded := codedError(err)
		printer.Error(coded)
		return coded
	}

	text := tmpl.Render(tmplArgs)

	if printer.IsJSON() {
		return printer.WriteJSON(resolveResult{
			Name:   name,
			Source: tmpl.Source,
			Text:   text,
		})
	}

	printer.Println(text)
	return nil
}

// loadResolveTarget picks the template from --file or the first
// positional argument; the remaining arguments feed substitution.
func loadResolveTarget(st *store.Store, args []string, fileFlag string) (string, *template.Template, []string, error) {
	if fileFlag != "" {
		tmpl, err := st.LoadPath(fileFlag)
		return fileFlag, tmpl, args, err
	}

	if len(args) == 0 {
		return "", nil, nil, output.NewUserError("template name required. Run 'chatcmd list' to see available templates")
	}

	tmpl, err := st.Load(args[0])
	return args[0], tmpl, args[1:], err
}
