// Package output provides structured output and error handling for the
// chatcmd CLI.
//
// The Printer is the primary interface for command output. It switches
// between human-readable and JSON formats based on the --json flag and
// disables lipgloss styling when output is not a terminal:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Created review.md"})
//	printer.Error(err)
//
// In JSON mode errors render as {"error": "message", "code": N}; the
// same code becomes the process exit status:
//
//	output.ExitSuccess       // 0
//	output.ExitUserError     // 1: bad args, unknown template
//	output.ExitSystemError   // 2: I/O failure
//	output.ExitConflict      // 3: scaffold target exists
//	output.ExitTemplateError // 4: malformed header or wrong kind
//
// Use the error constructors (NewUserError, NewSystemError,
// NewConflictError, NewTemplateError) so errors carry their code.
package output
