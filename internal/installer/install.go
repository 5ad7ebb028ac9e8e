package installer

import (
	"context"

	"shadcn-helper/internal/errors"
	"shadcn-helper/internal/generator"
	"shadcn-helper/internal/logger"
	"shadcn-helper/internal/stash"
)

// Add generates the given components and records them in the index.
//
// An existing components directory is stashed next to itself first, so the
// generator writes into an empty directory, and merged back afterwards with
// freshly generated files taking precedence. A generator failure stops the
// workflow before the index is touched and leaves the stash in place.
func (i *Installer) Add(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		logger.Warn("[WARN] No component to add\n")
		return nil
	}
	if err := i.prepare(); err != nil {
		return err
	}

	l := i.layout
	if l.HasStash(i.fs) {
		return errors.StashLeftover(l.RelStashDir, l.RelComponentsDir)
	}
	hasSource := l.HasComponents(i.fs)

	if _, err := i.ignore.EnsureIgnored(l.RelComponentsDir, l.RelStashDir); err != nil {
		return errors.Wrap(err, errors.ErrFS, "failed to update ignore file").
			WithDetails("path", i.ignore.Path())
	}

	if hasSource {
		logger.Info("[INFO] Stashing %s to %s\n", l.RelComponentsDir, l.RelStashDir)
		if _, err := i.mover.MoveAll(l.ComponentsDir, l.StashDir, stash.Overwrite); err != nil {
			return errors.Wrap(err, errors.ErrStash, "failed to stash components").
				WithDetails("stash", l.RelStashDir)
		}
	}

	argv := generator.AddCommand(i.cfg.Runner, i.framework.CLICommand(), ids)
	if err := i.runner.Run(ctx, l.Root, argv); err != nil {
		stashDir := ""
		if hasSource {
			stashDir = l.RelStashDir
		}
		return errors.GeneratorFailed(argv, stashDir, err)
	}

	list, indexErr := i.index.Add(ids...)

	// Restore even when the index could not be written so the user's files
	// are not left in the stash.
	if hasSource {
		if err := i.restore(); err != nil {
			return errors.Join(indexErr, err)
		}
	}
	if indexErr != nil {
		return indexErr
	}

	logger.Info("[INFO] Added %d component(s), %d tracked in %s\n", len(ids), len(list), l.RelIndexFile)
	return nil
}

func (i *Installer) restore() error {
	l := i.layout
	logger.Info("[INFO] Restoring %s into %s\n", l.RelStashDir, l.RelComponentsDir)

	report, err := i.mover.MoveAll(l.StashDir, l.ComponentsDir, stash.KeepTarget)
	if err != nil {
		return errors.Wrap(err, errors.ErrStash, "failed to restore stashed components").
			WithDetails("stash", l.RelStashDir).
			WithSuggestion("Move the remaining files from " + l.RelStashDir + " back into " + l.RelComponentsDir)
	}

	for _, c := range report.Conflicts {
		logger.Warn("[WARN] %s/%s was regenerated, the stashed copy was replaced\n", l.RelComponentsDir, c.Path)
		if logger.DebugEnabled() && c.Diff != "" {
			logger.Debug("[DEBUG] Replaced content:\n%s\n", c.Diff)
		}
	}
	logger.Debug("[DEBUG] Restored %d entries, %d conflicts\n", report.Moved, len(report.Conflicts))
	return nil
}
