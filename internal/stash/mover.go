// Package stash moves a components directory out of the generator's way and
// merges it back afterwards.
package stash

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"

	"shadcn-helper/internal/logger"
)

// Policy decides which side wins when a file exists in both source and target.
type Policy int

const (
	// Overwrite replaces the target with the source entry.
	Overwrite Policy = iota
	// KeepTarget keeps the target and discards the source entry.
	KeepTarget
)

func (p Policy) String() string {
	if p == KeepTarget {
		return "keep-target"
	}
	return "overwrite"
}

// Conflict is a file that existed on both sides with different content.
// Path is relative to the target directory. Diff is a unified diff from the
// discarded content to the kept content.
type Conflict struct {
	Path string
	Diff string
}

// Report summarizes a MoveAll call.
type Report struct {
	// Moved counts entries renamed or copied into the target.
	Moved int
	// Conflicts lists same-named files whose content differed.
	Conflicts []Conflict
}

// Mover relocates directory trees on fs.
type Mover struct {
	fs afero.Fs
}

// NewMover returns a Mover working on fs.
func NewMover(fs afero.Fs) *Mover {
	return &Mover{fs: fs}
}

// MoveAll moves every entry of src into dst, creating dst when needed.
// Directories present on both sides are merged recursively; same-named files
// are resolved by policy. Afterwards src is removed. A src that cannot be
// removed is only logged, since its contents have already been moved.
func (m *Mover) MoveAll(src, dst string, policy Policy) (Report, error) {
	var report Report

	logger.Debug("[DEBUG] Moving %s -> %s (%s)\n", src, dst, policy)
	if err := m.moveEntries(src, dst, "", policy, &report); err != nil {
		return report, err
	}

	if err := m.fs.Remove(src); err != nil {
		logger.Warn("[WARN] Could not remove %s: %v\n", src, err)
	}
	return report, nil
}

func (m *Mover) moveEntries(src, dst, rel string, policy Policy, report *Report) error {
	if err := m.fs.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	entries, err := afero.ReadDir(m.fs, src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		relPath := filepath.Join(rel, entry.Name())

		target, err := m.fs.Stat(to)
		switch {
		case os.IsNotExist(err):
			if err := m.move(from, to); err != nil {
				return err
			}
			report.Moved++

		case err != nil:
			return fmt.Errorf("stat %s: %w", to, err)

		case entry.IsDir() && target.IsDir():
			if err := m.moveEntries(from, to, relPath, policy, report); err != nil {
				return err
			}
			if err := m.fs.Remove(from); err != nil {
				logger.Warn("[WARN] Could not remove %s: %v\n", from, err)
			}

		default:
			kept, discarded := from, to
			if policy == KeepTarget {
				kept, discarded = to, from
			}
			if c, ok := m.compare(discarded, kept, relPath); ok {
				report.Conflicts = append(report.Conflicts, c)
			}

			if err := m.fs.RemoveAll(discarded); err != nil {
				return fmt.Errorf("remove %s: %w", discarded, err)
			}
			if policy == Overwrite {
				if err := m.move(from, to); err != nil {
					return err
				}
				report.Moved++
			}
		}
	}
	return nil
}

// move renames from to to, copying when a rename is not possible (for example
// across devices).
func (m *Mover) move(from, to string) error {
	renameErr := m.fs.Rename(from, to)
	if renameErr == nil {
		return nil
	}

	logger.Debug("[DEBUG] Rename %s failed (%v), copying instead\n", from, renameErr)
	if err := m.copyTree(from, to); err != nil {
		return fmt.Errorf("move %s to %s: %w", from, to, err)
	}
	if err := m.fs.RemoveAll(from); err != nil {
		return fmt.Errorf("remove %s after copy: %w", from, err)
	}
	return nil
}

func (m *Mover) copyTree(from, to string) error {
	return afero.Walk(m.fs, from, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(from, p)
		if err != nil {
			return err
		}
		target := filepath.Join(to, rel)

		if info.IsDir() {
			return m.fs.MkdirAll(target, info.Mode().Perm())
		}
		return m.copyFile(p, target, info.Mode().Perm())
	})
}

// copyFile copies src to dst, creating parent directories and preserving mode.
func (m *Mover) copyFile(src, dst string, mode os.FileMode) (err error) {
	in, err := m.fs.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	if err := m.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	out, err := m.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}

// compare returns a Conflict when both paths are regular files with different
// content.
func (m *Mover) compare(discarded, kept, rel string) (Conflict, bool) {
	a, errA := afero.ReadFile(m.fs, discarded)
	b, errB := afero.ReadFile(m.fs, kept)
	if errA != nil || errB != nil || bytes.Equal(a, b) {
		return Conflict{}, false
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: "discarded/" + filepath.ToSlash(rel),
		ToFile:   "kept/" + filepath.ToSlash(rel),
		Context:  3,
	})
	if err != nil {
		diff = ""
	}
	return Conflict{Path: filepath.ToSlash(rel), Diff: diff}, true
}
