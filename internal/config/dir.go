// Package config provides the global configuration directory for chatcmd.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the chatcmd configuration directory.
//
// Resolution:
//   - $CHATCMD_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/chatcmd if set (respects XDG on any platform)
//   - %AppData%/chatcmd on Windows
//   - ~/.config/chatcmd on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("CHATCMD_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chatcmd")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "chatcmd")
		}
	}

	// macOS and Linux: ~/.config/chatcmd
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chatcmd")
}

// CommandsDir returns the user's global template directory, or "" when
// no configuration directory can be resolved.
func CommandsDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "commands")
}

// ProjectCommandsDir returns the project-local template directory,
// relative to the working directory.
func ProjectCommandsDir() string {
	return filepath.Join(".chatcmd", "commands")
}
