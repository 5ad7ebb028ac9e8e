// Package editor opens a component file for manual editing.
package editor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/skratchdot/open-golang/open"

	"shadcn-helper/internal/errors"
	"shadcn-helper/internal/logger"
)

// Method records how a file ended up being opened.
type Method string

const (
	// ViaEditor means the configured editor command succeeded.
	ViaEditor Method = "editor"
	// ViaOpener means the OS default opener was used after the editor failed.
	ViaOpener Method = "opener"
)

// Launcher tries the configured editor first and falls back to the OS file
// opener, waiting for it to exit.
type Launcher struct {
	// Editor is the editor command line, e.g. "code" or "code --wait".
	Editor string

	runEditor func(ctx context.Context, argv []string) error
	openFile  func(path string) error
}

// NewLauncher returns a Launcher for the given editor command.
func NewLauncher(editor string) *Launcher {
	return &Launcher{
		Editor:    editor,
		runEditor: runCommand,
		openFile:  open.Run,
	}
}

// Open opens path and reports which method worked. When both fail the
// returned error carries both causes.
func (l *Launcher) Open(ctx context.Context, path string) (Method, error) {
	argv := append(strings.Fields(l.Editor), path)

	var editorErr error = errors.New(errors.ErrEditor, "no editor configured")
	if len(argv) > 1 {
		logger.Debug("[DEBUG] Opening %s with %s\n", path, argv[0])
		editorErr = l.runEditor(ctx, argv)
		if editorErr == nil {
			return ViaEditor, nil
		}
	}

	logger.Warn("[WARN] Could not open %s with %q (%v), using the system opener\n", path, l.Editor, editorErr)
	if err := l.openFile(path); err != nil {
		return "", errors.EditorFailed(path, editorErr, err)
	}
	return ViaOpener, nil
}

func runCommand(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
