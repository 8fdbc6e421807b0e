package template

import "fmt"

// KindError is returned when a document does not declare `type: chat-template`.
type KindError struct {
	// Declared is the kind the header actually declared, or "undefined"
	// when the header or its type key is absent.
	Declared string
}

// Error implements the error interface.
func (e *KindError) Error() string {
	return fmt.Sprintf("invalid template kind %q (want %q)", e.Declared, Kind)
}

// declaredKind normalizes a header's type value for diagnostics.
func declaredKind(kind string) string {
	if kind == "" {
		return "undefined"
	}
	return kind
}

// HeaderError is returned when a frontmatter block is present but
// cannot be decoded as YAML.
type HeaderError struct {
	Cause error
}

// Error implements the error interface.
func (e *HeaderError) Error() string {
	return fmt.Sprintf("malformed template header: %v", e.Cause)
}

// Unwrap returns the underlying decode error for errors.Is/errors.As.
func (e *HeaderError) Unwrap() error {
	return e.Cause
}
