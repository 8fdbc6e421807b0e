package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
		{"ExitConflict", ExitConflict, 3},
		{"ExitTemplateError", ExitTemplateError, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
		wantMsg  string
	}{
		{
			name:     "user error",
			err:      NewUserError("template \"nope\" not found"),
			wantCode: ExitUserError,
			wantMsg:  "template \"nope\" not found",
		},
		{
			name:     "system error",
			err:      NewSystemError("reading template failed"),
			wantCode: ExitSystemError,
			wantMsg:  "reading template failed",
		},
		{
			name:     "conflict error",
			err:      NewConflictError("template already exists"),
			wantCode: ExitConflict,
			wantMsg:  "template already exists",
		},
		{
			name:     "template error",
			err:      NewTemplateError("invalid template kind \"other\"", nil),
			wantCode: ExitTemplateError,
			wantMsg:  "invalid template kind \"other\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("permission denied")
	err := NewSystemErrorWithCause("writing template failed", underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if GetExitCode(wrapped) != ExitSystemError {
		t.Errorf("GetExitCode(wrapped) = %d, want %d", GetExitCode(wrapped), ExitSystemError)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"user error", NewUserError("bad"), ExitUserError},
		{"template error", NewTemplateError("bad kind", nil), ExitTemplateError},
		{"untyped error", errors.New("plain"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
