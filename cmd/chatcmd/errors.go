// Package main provides the entry point for the chatcmd CLI.
package main

import (
	"errors"

	"github.com/ashgrove/chatcmd/internal/output"
	"github.com/ashgrove/chatcmd/internal/store"
	"github.com/ashgrove/chatcmd/internal/template"
)

// codedError maps template and store errors onto exit-coded errors.
// Already-coded errors pass through unchanged.
func codedError(err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var kindErr *template.KindError
	var headerErr *template.HeaderError
	switch {
	case errors.As(err, &kindErr), errors.As(err, &headerErr):
		return output.NewTemplateError(err.Error(), err)
	case errors.Is(err, store.ErrNotFound):
		return output.NewUserError(err.Error() + ". Run 'chatcmd list' to see available templates")
	default:
		return output.NewSystemError(err.Error())
	}
}
