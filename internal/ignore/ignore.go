// Package ignore appends shadcn-helper entries to a project's .gitignore.
package ignore

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"shadcn-helper/internal/logger"
)

// BlockHeader starts the block written by EnsureIgnored.
const BlockHeader = "# Shadcn UI components"

// File is a .gitignore that is only ever appended to.
type File struct {
	fs   afero.Fs
	path string
}

// New returns the ignore file at path. The file does not need to exist.
func New(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

// Path returns the ignore file path.
func (f *File) Path() string {
	return f.path
}

// EnsureIgnored ignores everything inside componentsDir and the stash
// directory. Nothing is written when a line already starts with componentsDir,
// so repeated runs do not pile up duplicate blocks. It reports whether the
// block was appended.
func (f *File) EnsureIgnored(componentsDir, stashDir string) (bool, error) {
	content, err := f.read()
	if err != nil {
		return false, err
	}

	pattern := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(componentsDir))
	if pattern.MatchString(content) {
		logger.Debug("[DEBUG] %s already ignores %s\n", f.path, componentsDir)
		return false, nil
	}

	block := fmt.Sprintf("\n%s\n%s/\n%s/*\n", BlockHeader, stashDir, componentsDir)
	if err := f.append(block); err != nil {
		return false, err
	}
	logger.Info("[INFO] Ignoring %s/* in %s\n", componentsDir, f.path)
	return true, nil
}

// Unignore adds a negated entry for p so git tracks it despite the blanket
// ignore. An identical negation already present is not repeated.
func (f *File) Unignore(p string) (bool, error) {
	content, err := f.read()
	if err != nil {
		return false, err
	}

	line := "!" + p
	for _, existing := range strings.Split(content, "\n") {
		if strings.TrimRight(existing, "\r") == line {
			return false, nil
		}
	}

	if err := f.append("\n" + line); err != nil {
		return false, err
	}
	logger.Info("[INFO] Un-ignored %s in %s\n", p, f.path)
	return true, nil
}

func (f *File) read() (string, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", f.path, err)
	}
	return string(data), nil
}

func (f *File) append(s string) (err error) {
	file, err := f.fs.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := file.WriteString(s); err != nil {
		return fmt.Errorf("append to %s: %w", f.path, err)
	}
	return nil
}
