// Package store provides named lookup and listing of chat templates.
//
// Templates are resolved in order:
//  1. .chatcmd/commands/<name>.md (project-local)
//  2. ~/.config/chatcmd/commands/<name>.md (user global)
//  3. Built-in templates (embedded in binary)
package store
