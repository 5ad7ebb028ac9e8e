package editor

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadcn-helper/internal/errors"
)

type calls struct {
	editor [][]string
	opener []string
}

func newTestLauncher(editor string, editorErr, openerErr error) (*Launcher, *calls) {
	c := &calls{}
	return &Launcher{
		Editor: editor,
		runEditor: func(_ context.Context, argv []string) error {
			c.editor = append(c.editor, argv)
			return editorErr
		},
		openFile: func(path string) error {
			c.opener = append(c.opener, path)
			return openerErr
		},
	}, c
}

func TestOpenWithEditor(t *testing.T) {
	l, c := newTestLauncher("code --wait", nil, nil)

	method, err := l.Open(context.Background(), "components/ui/button.tsx")
	require.NoError(t, err)

	assert.Equal(t, ViaEditor, method)
	assert.Equal(t, [][]string{{"code", "--wait", "components/ui/button.tsx"}}, c.editor)
	assert.Empty(t, c.opener)
}

func TestOpenFallsBackToOpener(t *testing.T) {
	l, c := newTestLauncher("code", stderrors.New("executable file not found"), nil)

	method, err := l.Open(context.Background(), "components/ui/button.tsx")
	require.NoError(t, err)

	assert.Equal(t, ViaOpener, method)
	assert.Equal(t, []string{"components/ui/button.tsx"}, c.opener)
}

func TestOpenWithoutEditorUsesOpener(t *testing.T) {
	l, c := newTestLauncher("  ", nil, nil)

	method, err := l.Open(context.Background(), "x.vue")
	require.NoError(t, err)

	assert.Equal(t, ViaOpener, method)
	assert.Empty(t, c.editor)
}

func TestOpenBothFail(t *testing.T) {
	editorErr := stderrors.New("code missing")
	openerErr := stderrors.New("xdg-open missing")
	l, _ := newTestLauncher("code", editorErr, openerErr)

	_, err := l.Open(context.Background(), "x.tsx")
	require.Error(t, err)

	assert.True(t, errors.Is(err, errors.ErrEditor))
	assert.True(t, errors.Is(err, editorErr))
	assert.True(t, errors.Is(err, openerErr))
}
