package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	// Clear overrides
	t.Setenv("CHATCMD_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "chatcmd" {
			t.Errorf("Dir() = %q, want path ending in 'chatcmd'", dir)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("CHATCMD_CONFIG_HOME", "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("CHATCMD_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "chatcmd") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", "chatcmd"))
	}
}

func TestCommandsDir(t *testing.T) {
	t.Setenv("CHATCMD_CONFIG_HOME", "/custom/path")
	want := filepath.Join("/custom/path", "commands")
	if got := CommandsDir(); got != want {
		t.Errorf("CommandsDir() = %q, want %q", got, want)
	}
}

func TestProjectCommandsDir(t *testing.T) {
	want := filepath.Join(".chatcmd", "commands")
	if got := ProjectCommandsDir(); got != want {
		t.Errorf("ProjectCommandsDir() = %q, want %q", got, want)
	}
}
