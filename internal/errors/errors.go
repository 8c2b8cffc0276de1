// Package errors defines the error kinds reported by scaffer and a structured
// error type that carries the template identifier or path involved plus
// actionable guidance for the user.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every *Error matches exactly one of these via errors.Is.
var (
	// ErrNotFound indicates a missing template or identifier.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt indicates a stored template record that cannot be parsed.
	ErrCorrupt = errors.New("corrupt template")

	// ErrIOFailure indicates a directory or file could not be created, read or written.
	ErrIOFailure = errors.New("i/o failure")

	// ErrFetchFailure indicates the ignore-file could not be retrieved.
	ErrFetchFailure = errors.New("fetch failure")

	// ErrInvalidInput indicates malformed or unavailable interactive input.
	ErrInvalidInput = errors.New("invalid input")
)

// Error is a structured failure with enough context for a human to diagnose it.
type Error struct {
	// Kind is one of the Err* sentinels.
	Kind error

	// Message describes what failed.
	Message string

	// Identifier is the template identifier involved (optional).
	Identifier string

	// Path is the filesystem path or URL involved (optional).
	Path string

	// Guidance suggests what the user can do about it (optional).
	Guidance string

	// Cause is the underlying error (optional).
	Cause error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Kind.Error())
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	if e.Guidance != "" {
		b.WriteString("\n\nSuggestion: ")
		b.WriteString(e.Guidance)
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// NotFound reports a template identifier with no stored record at path.
func NotFound(identifier, path string) *Error {
	return &Error{
		Kind:       ErrNotFound,
		Message:    fmt.Sprintf("template %q does not exist at %s", identifier, path),
		Identifier: identifier,
		Path:       path,
		Guidance: "Run 'scaffer templates list' to see the available templates, " +
			"or create one with 'scaffer templates add'.",
	}
}

// Corrupt reports a stored record at path that could not be parsed.
func Corrupt(identifier, path string, cause error) *Error {
	return &Error{
		Kind:       ErrCorrupt,
		Message:    fmt.Sprintf("template %q at %s cannot be parsed", identifier, path),
		Identifier: identifier,
		Path:       path,
		Guidance: fmt.Sprintf("Fix the YAML in %s by hand, or remove it with "+
			"'scaffer templates remove -t %s' and add it again.", path, identifier),
		Cause: cause,
	}
}

// IOFailure reports a failed filesystem operation op on path.
func IOFailure(op, path string, cause error) *Error {
	guidance := "Check that the parent directory exists and that you have write permissions."
	if cause != nil && strings.Contains(cause.Error(), "permission") {
		guidance = fmt.Sprintf("Permission denied for '%s'. Ensure you have access to it "+
			"and all of its parent directories.", path)
	}

	return &Error{
		Kind:     ErrIOFailure,
		Message:  fmt.Sprintf("failed to %s %s", op, path),
		Path:     path,
		Guidance: guidance,
		Cause:    cause,
	}
}

// FetchFailure reports that the ignore-file for identifier could not be retrieved from url.
func FetchFailure(identifier, url string, cause error) *Error {
	return &Error{
		Kind:       ErrFetchFailure,
		Message:    fmt.Sprintf("could not fetch .gitignore for %q from %s", identifier, url),
		Identifier: identifier,
		Path:       url,
		Guidance:   "Not every language has a published .gitignore; the project was created without one.",
		Cause:      cause,
	}
}

// InvalidInput reports that the value for field could not be collected or was rejected.
func InvalidInput(field, reason string, cause error) *Error {
	guidance := "Check the value and try again."
	switch field {
	case "terminal":
		guidance = "Interactive prompts need a terminal. Pass every value as a flag " +
			"(see 'scaffer --help') when running non-interactively."
	case "language":
		guidance = "Pass the template with -l/--language or pick one of 'scaffer templates list'."
	case "name":
		guidance = "Pass the project name with -n/--name."
	}

	return &Error{
		Kind:     ErrInvalidInput,
		Message:  fmt.Sprintf("invalid %s: %s", field, reason),
		Guidance: guidance,
		Cause:    cause,
	}
}
