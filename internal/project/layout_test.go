package project

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		dirs      []string
		override  string
		wantRel   string
		wantIndex string
		wantStash string
	}{
		{
			name:      "empty project",
			wantRel:   "components/ui",
			wantIndex: "components/index.ini",
			wantStash: "components/.stash",
		},
		{
			name:      "app root without components",
			dirs:      []string{"app"},
			wantRel:   "app/components/ui",
			wantIndex: "app/components/index.ini",
			wantStash: "app/components/.stash",
		},
		{
			name:      "top-level components wins over app",
			dirs:      []string{"app", "components"},
			wantRel:   "components/ui",
			wantIndex: "components/index.ini",
			wantStash: "components/.stash",
		},
		{
			name:      "override",
			dirs:      []string{"app"},
			override:  "src/lib/components/ui/",
			wantRel:   "src/lib/components/ui",
			wantIndex: "src/lib/components/index.ini",
			wantStash: "src/lib/components/.stash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, d := range tt.dirs {
				require.NoError(t, fs.MkdirAll(filepath.Join("/p", d), 0o755))
			}

			l := Resolve(fs, "/p", tt.override)

			assert.Equal(t, tt.wantRel, l.RelComponentsDir)
			assert.Equal(t, tt.wantIndex, l.RelIndexFile)
			assert.Equal(t, tt.wantStash, l.RelStashDir)
			assert.Equal(t, filepath.Join("/p", filepath.FromSlash(tt.wantRel)), l.ComponentsDir)
			assert.Equal(t, filepath.Join("/p", filepath.FromSlash(tt.wantIndex)), l.IndexFile)
			assert.Equal(t, filepath.Join("/p", ".gitignore"), l.IgnoreFile)
			assert.Equal(t, filepath.Join("/p", "components.json"), l.ConfigFile)
		})
	}
}

func TestLayoutPresenceChecks(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := Resolve(fs, "/p", "")

	assert.False(t, l.HasComponents(fs))
	assert.False(t, l.HasStash(fs))
	assert.False(t, l.IsGitRepo(fs))

	require.NoError(t, fs.MkdirAll(l.ComponentsDir, 0o755))
	require.NoError(t, fs.MkdirAll(l.StashDir, 0o755))
	require.NoError(t, afero.WriteFile(fs, l.GitDir, []byte("gitdir: ../.git/worktrees/p"), 0o644))

	assert.True(t, l.HasComponents(fs))
	assert.True(t, l.HasStash(fs))
	assert.True(t, l.IsGitRepo(fs))
	assert.Equal(t, filepath.Join("/p", "components", "ui", "button.tsx"), l.Abs("components/ui/button.tsx"))
}
