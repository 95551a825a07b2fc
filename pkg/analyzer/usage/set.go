package usage

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/panbanda/xsdscope/pkg/schema"
)

// DefinitionSet is an insertion-ordered set of definitions backed by a
// Roaring bitmap over node keys.
type DefinitionSet struct {
	bitmap *roaring64.Bitmap
	nodes  []schema.Node
}

// NewDefinitionSet creates an empty set.
func NewDefinitionSet() *DefinitionSet {
	return &DefinitionSet{bitmap: roaring64.New()}
}

// Add inserts n and reports whether it was absent.
func (s *DefinitionSet) Add(n schema.Node) bool {
	if !s.bitmap.CheckedAdd(n.Key()) {
		return false
	}
	s.nodes = append(s.nodes, n)
	return true
}

// Contains reports whether n is in the set.
func (s *DefinitionSet) Contains(n schema.Node) bool {
	return s.bitmap.Contains(n.Key())
}

// Len returns the number of definitions in the set.
func (s *DefinitionSet) Len() int {
	return len(s.nodes)
}

// Nodes returns the definitions in insertion order.
func (s *DefinitionSet) Nodes() []schema.Node {
	out := make([]schema.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Reset empties the set.
func (s *DefinitionSet) Reset() {
	s.bitmap.Clear()
	s.nodes = s.nodes[:0]
}
