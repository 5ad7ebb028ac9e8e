package stash

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative path -> content) under root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

// readTree returns every regular file under root keyed by slash-separated
// relative path.
func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func setup(t *testing.T) (m *Mover, components, stashDir string) {
	t.Helper()
	root := t.TempDir()
	return NewMover(afero.NewOsFs()), filepath.Join(root, "components", "ui"), filepath.Join(root, "components", ".stash")
}

func TestStashRoundTrip(t *testing.T) {
	m, components, stashDir := setup(t)
	original := map[string]string{
		"button.tsx":      "export const Button = 1",
		"card.tsx":        "export const Card = 2",
		"nested/deep.tsx": "deep",
	}
	writeTree(t, components, original)

	_, err := m.MoveAll(components, stashDir, Overwrite)
	require.NoError(t, err)
	assert.NoDirExists(t, components)
	assert.Equal(t, original, readTree(t, stashDir))

	report, err := m.MoveAll(stashDir, components, KeepTarget)
	require.NoError(t, err)
	assert.Empty(t, report.Conflicts)

	assert.NoDirExists(t, stashDir)
	assert.Equal(t, original, readTree(t, components))
}

func TestRestoreMergesGeneratedWins(t *testing.T) {
	m, components, stashDir := setup(t)
	writeTree(t, components, map[string]string{
		"x.tsx": "old x",
		"y.tsx": "y",
	})

	_, err := m.MoveAll(components, stashDir, Overwrite)
	require.NoError(t, err)

	// The generator recreates the directory with a regenerated x and a new z.
	writeTree(t, components, map[string]string{
		"x.tsx": "new x",
		"z.tsx": "z",
	})

	report, err := m.MoveAll(stashDir, components, KeepTarget)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"x.tsx": "new x",
		"y.tsx": "y",
		"z.tsx": "z",
	}, readTree(t, components))
	assert.NoDirExists(t, stashDir)

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "x.tsx", report.Conflicts[0].Path)
	assert.Contains(t, report.Conflicts[0].Diff, "-old x")
	assert.Contains(t, report.Conflicts[0].Diff, "+new x")
	assert.Equal(t, 1, report.Moved)
}

func TestRestoreMergesDirectories(t *testing.T) {
	m, components, stashDir := setup(t)
	writeTree(t, stashDir, map[string]string{
		"card/Card.vue":       "stashed card",
		"card/CardFooter.vue": "user footer",
	})
	writeTree(t, components, map[string]string{
		"card/Card.vue":       "generated card",
		"card/CardHeader.vue": "generated header",
	})

	_, err := m.MoveAll(stashDir, components, KeepTarget)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"card/Card.vue":       "generated card",
		"card/CardFooter.vue": "user footer",
		"card/CardHeader.vue": "generated header",
	}, readTree(t, components))
	assert.NoDirExists(t, stashDir)
}

func TestOverwritePolicyReplacesTarget(t *testing.T) {
	m, components, stashDir := setup(t)
	writeTree(t, components, map[string]string{"a.tsx": "new"})
	writeTree(t, stashDir, map[string]string{"a.tsx": "leftover", "b.tsx": "b"})

	report, err := m.MoveAll(components, stashDir, Overwrite)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a.tsx": "new", "b.tsx": "b"}, readTree(t, stashDir))
	require.Len(t, report.Conflicts, 1)
	assert.Contains(t, report.Conflicts[0].Diff, "-leftover")
}

func TestIdenticalFilesAreNotConflicts(t *testing.T) {
	m, components, stashDir := setup(t)
	writeTree(t, stashDir, map[string]string{"a.tsx": "same"})
	writeTree(t, components, map[string]string{"a.tsx": "same"})

	report, err := m.MoveAll(stashDir, components, KeepTarget)
	require.NoError(t, err)
	assert.Empty(t, report.Conflicts)
}

func TestMoveAllCreatesTarget(t *testing.T) {
	m, components, _ := setup(t)
	writeTree(t, components, map[string]string{"a.tsx": "a"})
	target := filepath.Join(filepath.Dir(components), "deeper", "target")

	_, err := m.MoveAll(components, target, Overwrite)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "a.tsx"))
}

func TestMoveAllMissingSourceFails(t *testing.T) {
	m, components, stashDir := setup(t)

	_, err := m.MoveAll(components, stashDir, Overwrite)
	assert.Error(t, err)
}

func TestCopyFallback(t *testing.T) {
	fs := renameFailingFs{afero.NewMemMapFs()}
	m := NewMover(fs)
	require.NoError(t, afero.WriteFile(fs, "/src/a/b.txt", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/c.txt", []byte("c"), 0o600))

	_, err := m.MoveAll("/src", "/dst", Overwrite)
	require.NoError(t, err)

	var names []string
	require.NoError(t, afero.Walk(fs, "/dst", func(p string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			names = append(names, filepath.ToSlash(p))
		}
		return err
	}))
	sort.Strings(names)
	assert.Equal(t, []string{"/dst/a/b.txt", "/dst/c.txt"}, names)

	exists, err := afero.Exists(fs, "/src")
	require.NoError(t, err)
	assert.False(t, exists)
}

// renameFailingFs simulates a cross-device layout where rename never works.
type renameFailingFs struct {
	afero.Fs
}

func (renameFailingFs) Rename(oldname, newname string) error {
	return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: os.ErrInvalid}
}
