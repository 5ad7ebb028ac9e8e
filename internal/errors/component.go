package errors

import (
	"fmt"
	"strings"
)

// ComponentNotFound is returned by edit when name matches no index entry,
// neither exactly nor by its last path segment.
func ComponentNotFound(name, indexPath string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("component %q is not found in %s", name, indexPath),
		Details: map[string]string{
			"component": name,
			"index":     indexPath,
		},
		Suggestion: "Run `shadcn-helper list` to see tracked components. " +
			"A component that was already edited is no longer tracked.",
	}
}

// UnsupportedCommand is returned for an unknown first CLI argument.
func UnsupportedCommand(command string) *Error {
	return &Error{
		Kind:       ErrCommand,
		Message:    fmt.Sprintf("unsupported %q command", command),
		Suggestion: "Available commands: add, edit, install, list, config",
	}
}

// GeneratorFailed wraps a failed generator run. stashDir is reported when the
// previous components were left stashed.
func GeneratorFailed(args []string, stashDir string, cause error) *Error {
	e := &Error{
		Kind:    ErrGenerator,
		Message: "component generator failed",
		Cause:   cause,
		Details: map[string]string{
			"command": strings.Join(args, " "),
		},
	}
	if stashDir != "" {
		e.Details["stash"] = stashDir
		e.Suggestion = fmt.Sprintf("Your previous components are kept in %s. "+
			"Move them back into place before running the command again.", stashDir)
	}
	return e
}

// StashLeftover is returned when a stash directory from an interrupted run is
// still present.
func StashLeftover(stashDir, componentsDir string) *Error {
	return &Error{
		Kind:    ErrStash,
		Message: fmt.Sprintf("stash directory %s already exists", stashDir),
		Details: map[string]string{
			"stash":      stashDir,
			"components": componentsDir,
		},
		Suggestion: fmt.Sprintf("A previous run was interrupted. Move the contents of %s back into %s "+
			"and delete %s, then retry.", stashDir, componentsDir, stashDir),
	}
}

// GitFailed wraps a failed git subprocess.
func GitFailed(args []string, output string, cause error) *Error {
	e := &Error{
		Kind:    ErrGit,
		Message: fmt.Sprintf("git %s failed", strings.Join(args, " ")),
		Cause:   cause,
	}
	if out := strings.TrimSpace(output); out != "" {
		e.WithDetails("output", out)
	}
	return e
}

// EditorFailed is returned when both the editor and the OS opener failed.
func EditorFailed(path string, editorErr, openerErr error) *Error {
	return &Error{
		Kind:    ErrEditor,
		Message: fmt.Sprintf("could not open %s", path),
		Cause:   Join(editorErr, openerErr),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Set `editor` in .shadcn-helper.yaml or SHADCN_HELPER_EDITOR to an editor on your PATH.",
	}
}
