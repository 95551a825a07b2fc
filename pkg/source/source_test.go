package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panbanda/xsdscope/internal/vcs"
)

func TestFilesystemSource(t *testing.T) {
	src := NewFilesystem()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.xsd")
	require.NoError(t, os.WriteFile(path, []byte("<schema/>"), 0644))

	content, err := src.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "<schema/>", string(content))

	_, err = src.Read(filepath.Join(dir, "missing.xsd"))
	assert.Error(t, err)
}

func TestFSSource(t *testing.T) {
	src := NewFS(fstest.MapFS{
		"schemas/a.xsd": {Data: []byte("a")},
	})

	content, err := src.Read("schemas/a.xsd")
	require.NoError(t, err)
	assert.Equal(t, "a", string(content))

	_, err = src.Read("schemas/b.xsd")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var nilSource *FSSource
	_, err = nilSource.Read("a.xsd")
	assert.Error(t, err)
}

func TestMemorySource(t *testing.T) {
	src := NewMemory(map[string]string{"a.xsd": "one"})

	content, err := src.Read("a.xsd")
	require.NoError(t, err)
	assert.Equal(t, "one", string(content))

	// Returned slices are copies.
	content[0] = 'X'
	again, err := src.Read("a.xsd")
	require.NoError(t, err)
	assert.Equal(t, "one", string(again))

	src.Put("a.xsd", "two")
	content, err = src.Read("a.xsd")
	require.NoError(t, err)
	assert.Equal(t, "two", string(content))

	_, err = src.Read("missing.xsd")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestContentSourceImplementations(t *testing.T) {
	var _ ContentSource = (*FilesystemSource)(nil)
	var _ ContentSource = (*FSSource)(nil)
	var _ ContentSource = (*MemorySource)(nil)
	var _ ContentSource = (*TreeSource)(nil)
}

func TestTreeSource(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "schemas"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schemas", "a.xsd"), []byte("<schema/>"), 0644))

	w, err := repo.Worktree()
	require.NoError(t, err)
	_, err = w.Add("schemas/a.xsd")
	require.NoError(t, err)
	_, err = w.Commit("add schema", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	// Uncommitted edits are not visible through the tree.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schemas", "a.xsd"), []byte("dirty"), 0644))

	r, err := vcs.Open(dir)
	require.NoError(t, err)
	tree, err := r.Tree("HEAD")
	require.NoError(t, err)

	src := NewTree(tree)
	content, err := src.Read("schemas/a.xsd")
	require.NoError(t, err)
	assert.Equal(t, "<schema/>", string(content))

	_, err = src.Read("schemas/missing.xsd")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
