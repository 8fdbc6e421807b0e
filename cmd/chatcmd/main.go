// Package main provides the entry point for the chatcmd CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ashgrove/chatcmd/internal/output"
	"github.com/ashgrove/chatcmd/internal/prefs"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the chatcmd CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chatcmd",
		Short: "Chat-template slash commands for AI agents",
		Long: `Chatcmd manages chat templates: markdown files with YAML frontmatter
whose bodies carry $ARGUMENTS and positional $1, $2, ... tokens.

Templates are resolved in order:
  1. .chatcmd/commands/<name>.md (project-local)
  2. ~/.config/chatcmd/commands/<name>.md (user global)
  3. Built-in templates (embedded in the binary)

Every template must declare 'type: chat-template' in its frontmatter.
All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'chatcmd --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Persistent flags (available to all subcommands)
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, or never")

	// Define command groups and add commands
	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode returns the effective color mode: the --color flag, falling
// back to the "color" preference when the flag is left at its default.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Root().PersistentFlags().Lookup("color")
	if flag == nil {
		return "auto"
	}
	mode := flag.Value.String()
	if flag.Changed {
		return mode
	}
	if p, err := prefs.Load(); err == nil {
		if value, ok := p.Get("color"); ok {
			return value
		}
	}
	return mode
}

// newPrinter builds a Printer for a command, honoring --json, --color,
// and the color preference.
func newPrinter(cmd *cobra.Command) *output.Printer {
	w := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(w))
	return output.NewPrinter(w, isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Template Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Template commands: resolve, list, show, new
	addGroupedCommand(cmd, newResolveCmd(), "core")
	addGroupedCommand(cmd, newListCmd(), "core")
	addGroupedCommand(cmd, newShowCmd(), "core")
	addGroupedCommand(cmd, newNewCmd(), "core")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")

	// Admin commands: prefs
	addGroupedCommand(cmd, newPrefsCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
