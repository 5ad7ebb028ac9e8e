package installer

import (
	"context"
	"strings"

	"shadcn-helper/internal/errors"
	"shadcn-helper/internal/logger"
)

// EditOptions tunes Edit.
type EditOptions struct {
	// Commit creates a git commit after staging the component.
	Commit bool
	// NoOpen skips launching the editor.
	NoOpen bool
}

// EditResult describes what Edit did.
type EditResult struct {
	// Removed is the index entry that was detached.
	Removed string
	// File is the component entry file, project-relative.
	File string
	// Tracked is the path un-ignored and staged, project-relative.
	Tracked string
	// Staged reports whether git add ran.
	Staged bool
}

// Edit detaches a component from the index so install no longer regenerates
// it, makes it trackable by git and opens it in an editor. Only the index
// removal must succeed before anything else happens; later steps are not
// rolled back when one of them fails.
func (i *Installer) Edit(ctx context.Context, name string, opts EditOptions) (EditResult, error) {
	var result EditResult

	name = strings.TrimSpace(name)
	if name == "" {
		return result, errors.New(errors.ErrCommand, "component name is required")
	}
	if err := i.prepare(); err != nil {
		return result, err
	}

	removed, err := i.index.Remove(name)
	if err != nil {
		return result, err
	}
	result.Removed = removed
	logger.Info("[INFO] Detached %s from %s\n", removed, i.layout.RelIndexFile)

	result.File, result.Tracked = i.framework.ComponentPaths(i.layout.RelComponentsDir, componentName(name))

	if _, err := i.ignore.Unignore(result.Tracked); err != nil {
		return result, errors.Wrap(err, errors.ErrFS, "failed to update ignore file").
			WithDetails("path", i.ignore.Path())
	}

	if i.layout.IsGitRepo(i.fs) {
		if err := i.vcs.Add(ctx, result.Tracked); err != nil {
			return result, err
		}
		result.Staged = true
		logger.Info("[INFO] Staged %s\n", result.Tracked)

		if opts.Commit {
			if err := i.vcs.Commit(ctx, "Add "+componentName(name)); err != nil {
				return result, err
			}
			logger.Info("[INFO] Committed %s\n", result.Tracked)
		}
	} else if opts.Commit {
		logger.Warn("[WARN] %s is not a git repository, skipping commit\n", i.cfg.ProjectDir)
	}

	if opts.NoOpen {
		return result, nil
	}
	method, err := i.opener.Open(ctx, i.layout.Abs(result.File))
	if err != nil {
		return result, err
	}
	logger.Debug("[DEBUG] Opened %s via %s\n", result.File, method)
	return result, nil
}
