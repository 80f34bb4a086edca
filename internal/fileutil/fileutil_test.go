package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLogsWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "2024", "march")
	require.NoError(t, os.MkdirAll(sub, 0755))

	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(sub, "b.txt"),
		filepath.Join(sub, "c.TXT"),
	}
	for _, p := range want {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0644))

	files, err := FindLogs([]string{dir}, ".txt")
	require.NoError(t, err)

	assert.Len(t, files, 3)
	assert.Contains(t, files, want[1])
	assert.Contains(t, files, want[2], "extension match is case-insensitive")
	assert.NotContains(t, files, filepath.Join(dir, "notes.md"))
}

func TestFindLogsExplicitFileIgnoresExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.log")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	files, err := FindLogs([]string{path}, ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestFindLogsDeduplicatesAndSorts(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("x"), 0644))

	files, err := FindLogs([]string{dir, b}, ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestFindLogsMissingPath(t *testing.T) {
	_, err := FindLogs([]string{filepath.Join(t.TempDir(), "gone")}, ".txt")
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, WriteFileAtomic(path, []byte(`{"ok":true}`), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
