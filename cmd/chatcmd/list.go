package main

import (
	"github.com/spf13/cobra"

	"github.com/ashgrove/chatcmd/internal/store"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return newListCmdInternal(nil)
}

// newListCmdInternal creates the list command with optional store injection.
func newListCmdInternal(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available chat templates",
		Long: `List all chat templates visible from the current directory.

Project and global templates shadow same-named built-ins; shadowed
built-ins are shown with the source that overrides them.

Examples:
  chatcmd list         # Table of templates
  chatcmd list --json  # JSON array`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, st)
		},
	}
}

// runList executes the list command.
func runList(cmd *cobra.Command, st *store.Store) error {
	printer := newPrinter(cmd)

	if st == nil {
		st = store.New()
	}

	infos := st.List()

	if printer.IsJSON() {
		return printer.WriteJSON(infos)
	}

	if len(infos) == 0 {
		printer.Println("No templates found.")
		return nil
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := info.Source
		if info.Overrides != "" {
			source += " (overridden by " + info.Overrides + ")"
		}
		rows = append(rows, []string{info.Name, info.Description, source})
	}
	printer.Table([]string{"NAME", "DESCRIPTION", "SOURCE"}, rows)
	return nil
}
