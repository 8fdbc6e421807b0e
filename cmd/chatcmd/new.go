package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ashgrove/chatcmd/internal/config"
	"github.com/ashgrove/chatcmd/internal/output"
)

// scaffoldContent is the starter text for a new template file.
const scaffoldContent = `---
type: chat-template
description: What this command does
---
Replace this with the prompt text. Use $ARGUMENTS for all arguments
joined with spaces, or $1, $2, ... for positional arguments.
`

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	var globalFlag bool

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold a new chat template",
		Long: `Create a starter template file named <name>.md.

By default the file goes into the project-local directory
(.chatcmd/commands); use --global for the user's config directory.
Existing files are never overwritten.

Examples:
  chatcmd new triage           # .chatcmd/commands/triage.md
  chatcmd new triage --global  # ~/.config/chatcmd/commands/triage.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0], globalFlag)
		},
	}

	cmd.Flags().BoolVar(&globalFlag, "global", false, "Create in the global config directory")

	return cmd
}

// runNew executes the new command.
func runNew(cmd *cobra.Command, name string, globalFlag bool) error {
	printer := newPrinter(cmd)

	dir := config.ProjectCommandsDir()
	if globalFlag {
		dir = config.CommandsDir()
		if dir == "" {
			err := output.NewSystemError("no configuration directory available")
			printer.Error(err)
			return err
		}
	}

	path := filepath.Join(dir, name+".md")

	if _, err := os.Stat(path); err == nil {
		conflictErr := output.NewConflictError(fmt.Sprintf("template %q already exists at %s", name, path))
		printer.Error(conflictErr)
		return conflictErr
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		sysErr := output.NewSystemErrorWithCause("creating template directory", err)
		printer.Error(sysErr)
		return sysErr
	}

	if err := os.WriteFile(path, []byte(scaffoldContent), 0o644); err != nil {
		sysErr := output.NewSystemErrorWithCause("writing template file", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": "Created " + path,
		"path":    path,
	})
}
