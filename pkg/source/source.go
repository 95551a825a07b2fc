package source

import (
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/panbanda/xsdscope/internal/vcs"
)

// ContentSource provides schema document content from a specific source.
type ContentSource interface {
	// Read returns the content of the document at path.
	Read(path string) ([]byte, error)
}

// FilesystemSource reads documents from the local filesystem.
type FilesystemSource struct{}

// NewFilesystem creates a source that reads from the filesystem.
func NewFilesystem() *FilesystemSource {
	return &FilesystemSource{}
}

// Read implements ContentSource.
func (f *FilesystemSource) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FSSource reads documents from an fs.FS.
type FSSource struct {
	fsys fs.FS
}

// NewFS creates a source backed by fsys. Paths are slash-separated and
// relative to the root of fsys.
func NewFS(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Read implements ContentSource.
func (s *FSSource) Read(path string) ([]byte, error) {
	if s == nil || s.fsys == nil {
		return nil, fmt.Errorf("no filesystem configured")
	}
	return fs.ReadFile(s.fsys, path)
}

// TreeSource reads documents from a git tree.
// It is safe for concurrent use by multiple goroutines.
type TreeSource struct {
	tree *vcs.Tree
	mu   sync.Mutex
}

// NewTree creates a source that reads from a git tree.
func NewTree(tree *vcs.Tree) *TreeSource {
	return &TreeSource{tree: tree}
}

// Read implements ContentSource.
func (t *TreeSource) Read(path string) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.File(path)
}

// MemorySource serves documents from an in-memory map.
// It is safe for concurrent use by multiple goroutines.
type MemorySource struct {
	files map[string][]byte
	mu    sync.RWMutex
}

// NewMemory creates a source holding a copy of files.
func NewMemory(files map[string]string) *MemorySource {
	m := &MemorySource{files: make(map[string][]byte, len(files))}
	for path, content := range files {
		m.files[path] = []byte(content)
	}
	return m
}

// Put stores content under path, replacing any previous content.
func (m *MemorySource) Put(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = []byte(content)
}

// Read implements ContentSource.
func (m *MemorySource) Read(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
