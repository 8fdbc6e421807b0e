package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ashgrove/chatcmd/internal/output"
)

func TestShowCommand(t *testing.T) {
	t.Setenv("CHATCMD_CONFIG_HOME", t.TempDir())

	tests := []struct {
		name         string
		args         []string
		wantErr      bool
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "metadata and body",
			args:         []string{"show", "greet"},
			wantContains: []string{"Name:", "greet", "Source:", "project", "Greet someone", "tone", "Body", "Hello $1!"},
		},
		{
			name:         "body only",
			args:         []string{"show", "greet", "--body"},
			wantContains: []string{"Hello $1! All args: $ARGUMENTS"},
			wantAbsent:   []string{"Source:", "Description"},
		},
		{
			name:         "unknown template",
			args:         []string{"show", "nope"},
			wantErr:      true,
			wantContains: []string{"not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newTestRoot(newShowCmdInternal(makeProjectStore(t)))

			got, err := execute(t, root, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("output should not contain %q:\n%s", absent, got)
				}
			}
		})
	}
}

func TestShowCommand_JSON(t *testing.T) {
	t.Setenv("CHATCMD_CONFIG_HOME", t.TempDir())

	root := newTestRoot(newShowCmdInternal(makeProjectStore(t)))

	got, err := execute(t, root, "show", "greet", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var payload showResult
	if err := json.Unmarshal([]byte(got), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, got)
	}
	if payload.Name != "greet" || payload.Description != "Greet someone" {
		t.Errorf("payload = %+v", payload)
	}
	if payload.Meta["tone"] != "friendly" {
		t.Errorf("Meta[tone] = %v, want %q", payload.Meta["tone"], "friendly")
	}
	if !strings.Contains(payload.Body, "$ARGUMENTS") {
		t.Errorf("Body should keep tokens intact: %q", payload.Body)
	}
}

func TestShowCommand_UnknownExitCode(t *testing.T) {
	t.Setenv("CHATCMD_CONFIG_HOME", t.TempDir())

	root := newTestRoot(newShowCmdInternal(makeProjectStore(t)))

	_, err := execute(t, root, "show", "nope")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}
