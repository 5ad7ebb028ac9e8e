// Package vcs wraps the git commands used when a component is edited.
package vcs

import (
	"context"
	"os/exec"
	"strings"

	"shadcn-helper/internal/errors"
	"shadcn-helper/internal/logger"
)

// Git runs git inside WorkDir.
type Git struct {
	// WorkDir is the project root.
	WorkDir string
	// Binary is the git executable, "git" when empty.
	Binary string
}

// NewGit returns a Git for workDir using the git on PATH.
func NewGit(workDir string) *Git {
	return &Git{WorkDir: workDir, Binary: "git"}
}

// Add stages paths.
func (g *Git) Add(ctx context.Context, paths ...string) error {
	_, err := g.run(ctx, append([]string{"add", "--"}, paths...)...)
	return err
}

// Commit records staged changes. A commit with nothing staged is not an error.
func (g *Git) Commit(ctx context.Context, message string) error {
	out, err := g.run(ctx, "commit", "-m", message)
	if err != nil && strings.Contains(out, "nothing to commit") {
		logger.Debug("[DEBUG] Nothing to commit\n")
		return nil
	}
	return err
}

// IsRepo reports whether WorkDir is inside a git work tree.
func (g *Git) IsRepo(ctx context.Context) bool {
	_, err := g.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = g.WorkDir
	logger.Debug("[DEBUG] Running command: %s %s\n", bin, strings.Join(args, " "))

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), errors.GitFailed(args, string(output), err)
	}
	return string(output), nil
}
