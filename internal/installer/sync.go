package installer

import (
	"context"

	"shadcn-helper/internal/logger"
)

// Install regenerates every component recorded in the index, e.g. after a
// fresh checkout where the ignored components directory is missing.
func (i *Installer) Install(ctx context.Context) error {
	ids, err := i.index.Load()
	if err != nil {
		return err
	}

	logger.Debug("[DEBUG] Reinstalling %d tracked component(s) from %s\n", len(ids), i.layout.RelIndexFile)
	return i.Add(ctx, ids...)
}

// Entry is one tracked component as shown by List.
type Entry struct {
	// ID is the identifier as written in the index.
	ID string
	// Path is the project-relative file or folder of the component.
	Path string
	// Present reports whether Path exists on disk.
	Present bool
}

// List returns the tracked components in index order.
func (i *Installer) List() ([]Entry, error) {
	ids, err := i.index.Load()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		_, tracked := i.framework.ComponentPaths(i.layout.RelComponentsDir, componentName(id))
		present, _ := existsRel(i, tracked)
		entries = append(entries, Entry{ID: id, Path: tracked, Present: present})
	}
	return entries, nil
}
