package schema

import (
	"errors"
	"fmt"
	"sync"

	"github.com/panbanda/xsdscope/pkg/resolver"
)

var (
	// ErrNoLoader is returned when a referenced document must be loaded but
	// the set has no loader.
	ErrNoLoader = errors.New("schema: no loader configured")

	// ErrNoResolver is returned when a location must be resolved relative to
	// a document that has no resolver.
	ErrNoResolver = errors.New("schema: document has no resolver")
)

// Loader builds the document identified by a resolver. It is supplied by
// the parsing layer.
type Loader func(res resolver.Resolver) (*Document, error)

// Set holds the documents of one schema set, keyed by resolver identity.
// Documents referenced through import, include and redefine are loaded
// lazily on first use. Set is safe for concurrent use.
type Set struct {
	loader Loader
	byID   map[string]*Document
	order  []*Document
	mu     sync.Mutex
}

// NewSet creates an empty set. loader may be nil when every document is
// added up front.
func NewSet(loader Loader) *Set {
	return &Set{
		loader: loader,
		byID:   make(map[string]*Document),
	}
}

// Add adds doc to the set and returns the set's document for doc's identity,
// which is doc itself unless a document with the same identity was added before.
func (s *Set) Add(doc *Document) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(doc.ID(), doc)
}

func (s *Set) addLocked(id string, doc *Document) *Document {
	if existing, ok := s.byID[id]; ok {
		return existing
	}
	doc.set = s
	s.byID[id] = doc
	s.order = append(s.order, doc)
	return doc
}

// Lookup returns the document with the given identity.
func (s *Set) Lookup(id string) (*Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.byID[id]
	return doc, ok
}

// Documents returns the documents in the order they were added or loaded.
func (s *Set) Documents() []*Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Document, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of documents in the set.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Load returns the document identified by res, loading it on first use.
// Loader failures are returned wrapped, never retried.
func (s *Set) Load(res resolver.Resolver) (*Document, error) {
	id := res.ID()
	if doc, ok := s.Lookup(id); ok {
		return doc, nil
	}
	if s.loader == nil {
		return nil, fmt.Errorf("load %s: %w", res.Name(), ErrNoLoader)
	}
	doc, err := s.loader(res)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", res.Name(), err)
	}
	if doc.resolver == nil {
		doc.resolver = res
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(id, doc), nil
}

// Referenced returns the document an import, include or redefine refers to.
// It returns nil without error for other components and for imports without
// a schemaLocation.
func (s *Set) Referenced(n Node) (*Document, error) {
	if !n.Kind().IsSchemaLocation() {
		return nil, nil
	}
	location := n.SchemaLocation()
	if location == "" {
		return nil, nil
	}
	base := n.doc.resolver
	if base == nil {
		return nil, fmt.Errorf("resolve %q: %w", location, ErrNoResolver)
	}
	namespace := n.doc.targetNamespace
	if n.Kind() == KindImport {
		namespace = n.Namespace()
	}
	target, err := base.Resolve(location, namespace)
	if err != nil {
		return nil, fmt.Errorf("resolve %q from %s: %w", location, base.Name(), err)
	}
	return s.Load(target)
}

// Referenced returns the document n refers to through its schemaLocation.
// Documents outside a set never expand.
func (n Node) Referenced() (*Document, error) {
	if !n.Valid() || n.doc.set == nil {
		return nil, nil
	}
	return n.doc.set.Referenced(n)
}
