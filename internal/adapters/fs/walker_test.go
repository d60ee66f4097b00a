package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.iioon.dev/iioon/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir1"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir2"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "en.toml"), []byte("a = \"A\""), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "dir1", "de.toml"), []byte("a = \"B\""), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "dir2", "fr.toml"), []byte("a = \"C\""), 0o600))

	walker := fs.NewWalker()
	files := make([]string, 0)

	for filePath := range walker.WalkFiles(tmpDir, nil) {
		files = append(files, filePath)
	}

	assert.Len(t, files, 3)
	assert.Contains(t, files, filepath.Join(tmpDir, "en.toml"))
	assert.Contains(t, files, filepath.Join(tmpDir, "dir1", "de.toml"))
	assert.Contains(t, files, filepath.Join(tmpDir, "dir2", "fr.toml"))
}

func TestWalker_WalkFiles_SkipsVCSDirs(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".git", "objects"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".jj"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src"), 0o750))

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".git", "config"), []byte("gitconfig"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".jj", "store"), []byte("jjstore"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "en.toml"), []byte("a = \"A\""), 0o600))

	walker := fs.NewWalker()
	files := make([]string, 0)

	for filePath := range walker.WalkFiles(tmpDir, nil) {
		files = append(files, filePath)
	}

	assert.Len(t, files, 1)
	assert.Contains(t, files, filepath.Join(tmpDir, "src", "en.toml"))
}

func TestWalker_WalkFiles_WithIgnores(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "build"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "en.toml"), []byte("a = \"A\""), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "build", "out.bin"), []byte("binary"), 0o600))

	walker := fs.NewWalker()
	files := make([]string, 0)

	for filePath := range walker.WalkFiles(tmpDir, []string{"build"}) {
		files = append(files, filePath)
	}

	assert.Len(t, files, 1)
	assert.Contains(t, files, filepath.Join(tmpDir, "en.toml"))
}

func TestWalker_WalkFiles_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	walker := fs.NewWalker()
	files := make([]string, 0)

	for filePath := range walker.WalkFiles(tmpDir, nil) {
		files = append(files, filePath)
	}

	assert.Empty(t, files)
}

func TestWalker_WalkFiles_EarlyBreak(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.toml"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.toml"), []byte("y"), 0o600))

	walker := fs.NewWalker()
	count := 0
	for range walker.WalkFiles(tmpDir, nil) {
		count++
		break
	}

	assert.Equal(t, 1, count)
}
