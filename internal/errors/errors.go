// Package errors provides the error types surfaced by shadcn-helper commands.
// Errors carry a kind for errors.Is matching, optional details and a suggestion
// that the CLI prints below the message.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel kinds for use with errors.Is().
var (
	// ErrConfig indicates invalid tool settings.
	ErrConfig = errors.New("configuration error")
	// ErrNotFound indicates a component is not tracked in the index.
	ErrNotFound = errors.New("not found")
	// ErrCommand indicates an unsupported CLI command.
	ErrCommand = errors.New("command error")
	// ErrGenerator indicates the component generator subprocess failed.
	ErrGenerator = errors.New("generator error")
	// ErrGit indicates a git operation failed.
	ErrGit = errors.New("git error")
	// ErrEditor indicates neither the editor nor the OS opener could open a file.
	ErrEditor = errors.New("editor error")
	// ErrStash indicates the stash directory is in an unexpected state.
	ErrStash = errors.New("stash error")
	// ErrFS indicates a filesystem operation failed.
	ErrFS = errors.New("filesystem error")
)

// Error is the base error type returned by shadcn-helper packages.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion is printed below the message when set.
	Suggestion string
	// Cause is the underlying error.
	Cause error
	// Details adds context such as file paths or command lines.
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the cause, or the kind when there is none.
func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is matches against the error kind.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format renders the message, details and suggestion for terminal output.
func (e *Error) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds a detail entry and returns the error for chaining.
func (e *Error) WithDetails(key, value string) *Error {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion sets the suggestion and returns the error for chaining.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// New creates an Error of the given kind.
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap wraps err with a kind and message.
func Wrap(err error, kind error, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: err}
}

// Format returns the rich rendering of err when it is an *Error, and
// "Error: <err>" otherwise.
func Format(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Format()
	}
	return fmt.Sprintf("Error: %v\n", err)
}

// Is re-exports the standard errors.Is so callers need only one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports the standard errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join re-exports the standard errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
