// Package installer adds, reinstalls and detaches shadcn components while
// keeping the component index, the stash and .gitignore in step.
package installer

import (
	"context"

	"github.com/spf13/afero"

	"shadcn-helper/internal/config"
	"shadcn-helper/internal/editor"
	"shadcn-helper/internal/errors"
	"shadcn-helper/internal/framework"
	"shadcn-helper/internal/generator"
	"shadcn-helper/internal/ignore"
	"shadcn-helper/internal/index"
	"shadcn-helper/internal/logger"
	"shadcn-helper/internal/project"
	"shadcn-helper/internal/stash"
	"shadcn-helper/internal/vcs"
)

// VCS stages and commits edited components.
type VCS interface {
	Add(ctx context.Context, paths ...string) error
	Commit(ctx context.Context, message string) error
}

// Opener opens a file for editing.
type Opener interface {
	Open(ctx context.Context, path string) (editor.Method, error)
}

// Installer runs the add, install and edit workflows for one project.
type Installer struct {
	cfg       *config.Config
	fs        afero.Fs
	framework framework.Framework
	layout    project.Layout

	index  *index.Store
	mover  *stash.Mover
	ignore *ignore.File
	runner generator.Runner
	vcs    VCS
	opener Opener
}

// Option customizes an Installer, mainly for tests.
type Option func(*Installer)

// WithFs replaces the filesystem used for project files.
func WithFs(fs afero.Fs) Option {
	return func(i *Installer) { i.fs = fs }
}

// WithRunner replaces the generator subprocess runner.
func WithRunner(r generator.Runner) Option {
	return func(i *Installer) { i.runner = r }
}

// WithVCS replaces the git wrapper.
func WithVCS(v VCS) Option {
	return func(i *Installer) { i.vcs = v }
}

// WithOpener replaces the editor launcher.
func WithOpener(o Opener) Option {
	return func(i *Installer) { i.opener = o }
}

// New resolves the framework and layout of cfg.ProjectDir and wires the
// components that act on it. It does not write anything.
func New(cfg *config.Config, opts ...Option) (*Installer, error) {
	i := &Installer{
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		runner: generator.NewExecRunner(),
		vcs:    vcs.NewGit(cfg.ProjectDir),
		opener: editor.NewLauncher(cfg.Editor),
	}
	for _, opt := range opts {
		opt(i)
	}

	if cfg.Framework != "" {
		f, err := framework.Parse(cfg.Framework)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfig, "invalid framework setting")
		}
		i.framework = f
	} else {
		i.framework = framework.Detect(i.fs, cfg.ProjectDir)
	}

	i.layout = project.Resolve(i.fs, cfg.ProjectDir, cfg.ComponentsDir)
	i.index = index.NewStore(i.fs, i.layout.IndexFile, cfg.IndexMode)
	i.mover = stash.NewMover(i.fs)
	i.ignore = ignore.New(i.fs, i.layout.IgnoreFile)

	logger.Debug("[DEBUG] Framework %s, components in %s, index %s\n",
		i.framework, i.layout.RelComponentsDir, i.layout.RelIndexFile)
	return i, nil
}

// Framework returns the resolved framework.
func (i *Installer) Framework() framework.Framework {
	return i.framework
}

// Layout returns the resolved project layout.
func (i *Installer) Layout() project.Layout {
	return i.layout
}

// prepare seeds components.json for the detected framework when the project
// has none yet.
func (i *Installer) prepare() error {
	if _, err := framework.SeedConfig(i.fs, i.cfg.ProjectDir, i.framework); err != nil {
		return errors.Wrap(err, errors.ErrFS, "failed to create "+framework.ConfigFile).
			WithDetails("path", i.layout.ConfigFile)
	}
	return nil
}
