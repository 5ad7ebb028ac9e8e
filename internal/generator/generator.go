// Package generator runs the shadcn component generator CLI.
package generator

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"shadcn-helper/internal/logger"
)

// Runner executes a command line in dir and blocks until it exits. A non-zero
// exit status is returned as an error.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) error
}

// ExecRunner runs commands as subprocesses with their output streamed to
// Stdout and Stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner wired to the process's own output.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir string, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = os.Stdin

	logger.Info("[INFO] $ %s\n", strings.Join(argv, " "))
	return cmd.Run()
}

// AddCommand builds "<runner...> <cliCommand> add -y -o <ids...>": a
// non-interactive run that overwrites files already in the registry output.
func AddCommand(runner, cliCommand string, ids []string) []string {
	argv := strings.Fields(runner)
	argv = append(argv, cliCommand, "add", "-y", "-o")
	return append(argv, ids...)
}
