// Package project resolves where shadcn-helper keeps its files inside a project.
package project

import (
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"shadcn-helper/internal/framework"
)

const (
	// DefaultComponentsDir is where the generator writes UI components.
	DefaultComponentsDir = "components/ui"
	// AppRootDir nests components when a project keeps them under app/.
	AppRootDir = "app"
	// IndexFileName is the component index, a sibling of the components dir.
	IndexFileName = "index.ini"
	// StashDirName holds the previous components during regeneration.
	StashDirName = ".stash"
	// IgnoreFileName is the git ignore file at the project root.
	IgnoreFileName = ".gitignore"
	// GitDirName marks a git repository.
	GitDirName = ".git"
)

// Layout holds the paths the workflow touches. Rel* paths are slash-separated
// and relative to Root; they are what ends up in .gitignore and git arguments.
type Layout struct {
	Root string

	RelComponentsDir string
	RelIndexFile     string
	RelStashDir      string

	ComponentsDir string
	IndexFile     string
	StashDir      string
	IgnoreFile    string
	ConfigFile    string
	GitDir        string
}

// Resolve computes the layout for root. The components directory is
// components/ui, or app/components/ui when the project has an app/ folder and
// no top-level components/ folder. override, when set, replaces that choice.
// None of the paths need to exist.
func Resolve(fs afero.Fs, root, override string) Layout {
	rel := override
	if rel == "" {
		rel = DefaultComponentsDir
		if !isDir(fs, filepath.Join(root, "components")) && isDir(fs, filepath.Join(root, AppRootDir)) {
			rel = path.Join(AppRootDir, DefaultComponentsDir)
		}
	}
	rel = path.Clean(filepath.ToSlash(rel))

	relIndex := path.Join(rel, "..", IndexFileName)
	relStash := path.Join(rel, "..", StashDirName)

	return Layout{
		Root:             root,
		RelComponentsDir: rel,
		RelIndexFile:     relIndex,
		RelStashDir:      relStash,
		ComponentsDir:    filepath.Join(root, filepath.FromSlash(rel)),
		IndexFile:        filepath.Join(root, filepath.FromSlash(relIndex)),
		StashDir:         filepath.Join(root, filepath.FromSlash(relStash)),
		IgnoreFile:       filepath.Join(root, IgnoreFileName),
		ConfigFile:       filepath.Join(root, framework.ConfigFile),
		GitDir:           filepath.Join(root, GitDirName),
	}
}

// Abs turns a slash-separated project-relative path into a filesystem path.
func (l Layout) Abs(rel string) string {
	return filepath.Join(l.Root, filepath.FromSlash(rel))
}

// HasComponents reports whether the components directory exists.
func (l Layout) HasComponents(fs afero.Fs) bool {
	return isDir(fs, l.ComponentsDir)
}

// HasStash reports whether a stash directory is present.
func (l Layout) HasStash(fs afero.Fs) bool {
	ok, _ := afero.Exists(fs, l.StashDir)
	return ok
}

// IsGitRepo reports whether the project root has a .git entry. Worktrees use a
// .git file, so any entry counts.
func (l Layout) IsGitRepo(fs afero.Fs) bool {
	ok, _ := afero.Exists(fs, l.GitDir)
	return ok
}

func isDir(fs afero.Fs, p string) bool {
	ok, _ := afero.IsDir(fs, p)
	return ok
}
