// Package vcs reads schema documents out of git history.
package vcs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repository is an opened git repository.
type Repository struct {
	repo *git.Repository
}

// Open opens the repository containing path, searching parent directories
// for the .git directory.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// Head returns the commit hash HEAD points at.
func (r *Repository) Head() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}

// Tree returns the file tree of the commit named by rev. Any revision
// understood by git rev-parse that go-git supports is accepted: branch and
// tag names, full or abbreviated hashes, HEAD~n.
func (r *Repository) Tree(rev string) (*Tree, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", hash, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree of %s: %w", hash, err)
	}
	return &Tree{tree: tree, commit: *hash}, nil
}

// Tree is the file tree of a single commit. Paths are slash-separated and
// relative to the repository root.
type Tree struct {
	tree   *object.Tree
	commit plumbing.Hash
}

// Commit returns the hash of the commit the tree belongs to.
func (t *Tree) Commit() string { return t.commit.String() }

// File returns the content of the file at path. A missing file yields an
// error matching fs.ErrNotExist.
func (t *Tree) File(path string) ([]byte, error) {
	f, err := t.tree.File(strings.TrimPrefix(path, "/"))
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
			return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
		}
		return nil, fmt.Errorf("read %s at %s: %w", path, t.commit, err)
	}
	rd, err := f.Reader()
	if err != nil {
		return nil, fmt.Errorf("read %s at %s: %w", path, t.commit, err)
	}
	defer rd.Close()
	return io.ReadAll(rd)
}

// Files lists the paths in the tree ending with suffix, sorted. An empty
// suffix lists every file.
func (t *Tree) Files(suffix string) ([]string, error) {
	var paths []string
	err := t.tree.Files().ForEach(func(f *object.File) error {
		if strings.HasSuffix(f.Name, suffix) {
			paths = append(paths, f.Name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list files at %s: %w", t.commit, err)
	}
	slices.Sort(paths)
	return paths, nil
}
