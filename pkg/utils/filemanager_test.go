package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *FileManager {
	t.Helper()

	root := t.TempDir()
	fm := NewFileManager(
		filepath.Join(root, "input"),
		filepath.Join(root, "output"),
		filepath.Join(root, "archive"),
	)
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestEnsureDirectories(t *testing.T) {
	fm := newTestManager(t)

	for _, dir := range []string{fm.InputDir, fm.OutputDir, fm.ArchiveDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestDiscoverWorkbooks(t *testing.T) {
	fm := newTestManager(t)

	touch(t, filepath.Join(fm.InputDir, "board_a.xlsx"))
	touch(t, filepath.Join(fm.InputDir, "board_b.xlsx"))
	touch(t, filepath.Join(fm.InputDir, "~$board_a.xlsx"))
	touch(t, filepath.Join(fm.InputDir, "notes.txt"))

	files, err := fm.DiscoverWorkbooks()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "board_a.xlsx", filepath.Base(files[0]))
	assert.Equal(t, "board_b.xlsx", filepath.Base(files[1]))
}

func TestDiscoverWorkbooksEmptyDir(t *testing.T) {
	fm := newTestManager(t)

	files, err := fm.DiscoverWorkbooks()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestArchiveInputFile(t *testing.T) {
	fm := newTestManager(t)

	src := filepath.Join(fm.InputDir, "board.xlsx")
	touch(t, src)

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(fm.ArchiveDir, "board.xlsx"), archived)
	assert.True(t, FileExists(archived))
	assert.False(t, FileExists(src))
}

func TestArchiveInputFileDisabled(t *testing.T) {
	fm := newTestManager(t)
	fm.ArchiveOnSuccess = false

	src := filepath.Join(fm.InputDir, "board.xlsx")
	touch(t, src)

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, src, archived)
	assert.True(t, FileExists(src))
}

func TestUniqueFileName(t *testing.T) {
	name := UniqueFileName("main_board", ".txt")
	assert.Regexp(t, regexp.MustCompile(`^main_board_\d{8}_\d{6}_[0-9a-f]{8}\.txt$`), name)

	other := UniqueFileName("main_board", ".txt")
	assert.NotEqual(t, name, other)
}

func TestBaseNameWithoutExt(t *testing.T) {
	assert.Equal(t, "board", BaseNameWithoutExt("/data/in/board.xlsx"))
	assert.Equal(t, "board", BaseNameWithoutExt("board.xlsx"))
	assert.Equal(t, "board", BaseNameWithoutExt("board"))
}
