package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashgrove/chatcmd/internal/output"
	"github.com/ashgrove/chatcmd/internal/prefs"
)

// newPrefsCmd creates the prefs command with its subcommands.
func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage user preferences",
		Long: `Manage user preferences stored in the config directory.

Preferences are flat key/value pairs. Recognized keys include "color"
(auto, always, never), but any key may be stored.

Examples:
  chatcmd prefs set color never
  chatcmd prefs get color
  chatcmd prefs list
  chatcmd prefs unset color`,
	}

	cmd.AddCommand(newPrefsGetCmd())
	cmd.AddCommand(newPrefsSetCmd())
	cmd.AddCommand(newPrefsUnsetCmd())
	cmd.AddCommand(newPrefsListCmd())

	return cmd
}

// newPrefsGetCmd creates the prefs get subcommand.
func newPrefsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a preference value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			p, err := prefs.Load()
			if err != nil {
				sysErr := output.NewSystemErrorWithCause("loading preferences", err)
				printer.Error(sysErr)
				return sysErr
			}

			value, ok := p.Get(args[0])
			if !ok {
				userErr := output.NewUserError(fmt.Sprintf("preference %q is not set", args[0]))
				printer.Error(userErr)
				return userErr
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]string{"key": args[0], "value": value})
			}
			printer.Println(value)
			return nil
		},
	}
}

// newPrefsSetCmd creates the prefs set subcommand.
func newPrefsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a preference value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			p, err := prefs.Load()
			if err != nil {
				sysErr := output.NewSystemErrorWithCause("loading preferences", err)
				printer.Error(sysErr)
				return sysErr
			}

			p.Set(args[0], args[1])
			if err := p.Save(); err != nil {
				sysErr := output.NewSystemErrorWithCause("saving preferences", err)
				printer.Error(sysErr)
				return sysErr
			}

			return printer.Success(map[string]any{
				"message": fmt.Sprintf("Set %s = %s", args[0], args[1]),
				"key":     args[0],
				"value":   args[1],
			})
		},
	}
}

// newPrefsUnsetCmd creates the prefs unset subcommand.
func newPrefsUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			p, err := prefs.Load()
			if err != nil {
				sysErr := output.NewSystemErrorWithCause("loading preferences", err)
				printer.Error(sysErr)
				return sysErr
			}

			if !p.Unset(args[0]) {
				userErr := output.NewUserError(fmt.Sprintf("preference %q is not set", args[0]))
				printer.Error(userErr)
				return userErr
			}
			if err := p.Save(); err != nil {
				sysErr := output.NewSystemErrorWithCause("saving preferences", err)
				printer.Error(sysErr)
				return sysErr
			}

			return printer.Success(map[string]any{
				"message": "Unset " + args[0],
				"key":     args[0],
			})
		},
	}
}

// newPrefsListCmd creates the prefs list subcommand.
func newPrefsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			p, err := prefs.Load()
			if err != nil {
				sysErr := output.NewSystemErrorWithCause("loading preferences", err)
				printer.Error(sysErr)
				return sysErr
			}

			keys := p.Keys()

			if printer.IsJSON() {
				values := make(map[string]string, len(keys))
				for _, key := range keys {
					value, _ := p.Get(key)
					values[key] = value
				}
				return printer.WriteJSON(values)
			}

			if len(keys) == 0 {
				printer.Println("No preferences set.")
				return nil
			}
			for _, key := range keys {
				value, _ := p.Get(key)
				printer.KeyValue(key, value)
			}
			return nil
		},
	}
}
