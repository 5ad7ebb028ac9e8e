package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadcn-helper/internal/errors"
	"shadcn-helper/internal/installer"
)

type recordingRunner struct {
	calls [][]string
}

func (r *recordingRunner) Run(_ context.Context, dir string, argv []string) error {
	r.calls = append(r.calls, argv)
	p := filepath.Join(dir, "components", "ui", "button.tsx")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, []byte("export const Button = () => null\n"), 0o644)
}

func execute(t *testing.T, args []string, opts ...installer.Option) (string, error) {
	t.Helper()
	root := NewRootCommand(opts...)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestUnsupportedCommand(t *testing.T) {
	_, err := execute(t, []string{"remove", "button"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCommand))
	assert.Contains(t, err.Error(), `unsupported "remove" command`)
}

func TestNoArgsShowsHelp(t *testing.T) {
	out, err := execute(t, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands")
	assert.Contains(t, out, "install")
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".shadcn-helper.yaml"),
		[]byte("runner: pnpm dlx\nframework: vue\n"), 0o644))

	out, err := execute(t, []string{"config", "--dir", dir})
	require.NoError(t, err)
	assert.Contains(t, out, "runner: pnpm dlx")
	assert.Contains(t, out, "framework: vue")
	assert.Contains(t, out, "index_mode:")
}

func TestAddWithoutComponentsDoesNothing(t *testing.T) {
	dir := t.TempDir()
	runner := &recordingRunner{}

	_, err := execute(t, []string{"add", "--dir", dir}, installer.WithRunner(runner))
	require.NoError(t, err)
	assert.Empty(t, runner.calls)
	assert.NoFileExists(t, filepath.Join(dir, "components.json"))
}

func TestAddThenList(t *testing.T) {
	dir := t.TempDir()
	runner := &recordingRunner{}

	_, err := execute(t, []string{"add", "--dir", dir, "button"}, installer.WithRunner(runner))
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "button")

	out, err := execute(t, []string{"list", "--dir", dir})
	require.NoError(t, err)
	assert.Contains(t, out, "button")
	assert.Contains(t, out, "present")
}

func TestListEmptyProject(t *testing.T) {
	out, err := execute(t, []string{"list", "--dir", t.TempDir()})
	require.NoError(t, err)
	assert.Contains(t, out, "No components tracked")
}

func TestEditRequiresOneComponent(t *testing.T) {
	_, err := execute(t, []string{"edit", "--dir", t.TempDir()})
	require.Error(t, err)

	_, err = execute(t, []string{"edit", "--dir", t.TempDir(), "button", "card"})
	require.Error(t, err)
}

func TestEditUnknownComponent(t *testing.T) {
	_, err := execute(t, []string{"edit", "--dir", t.TempDir(), "--no-open", "button"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestInvalidSettingsFile(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, []string{"list", "--dir", dir, "--config", filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
}
