// Package walk traverses schema component trees with a Visitor, optionally
// expanding into the documents referenced by import, include and redefine.
package walk

import (
	"slices"

	"github.com/panbanda/xsdscope/pkg/schema"
)

// Predicate reports whether a component and its subtree should be skipped.
type Predicate func(n schema.Node) bool

// DocumentListener decides whether the walker enters a referenced document.
// Enter returns false to skip a document, typically one already visited in
// the current pass. Exit is called once for every Enter that returned true.
type DocumentListener interface {
	Enter(doc *schema.Document) bool
	Exit()
}

// Walker drives a Visitor over a component tree. A Walker holds no walk
// state and may be shared by concurrent walks with independent visitors and
// listeners.
type Walker struct {
	// Prune skips components for which it returns true. Nil skips nothing.
	Prune Predicate

	// Listener is consulted before expanding a referenced document. With a
	// nil Listener referenced documents are not expanded.
	Listener DocumentListener
}

// New creates a walker.
func New(prune Predicate, listener DocumentListener) *Walker {
	return &Walker{Prune: prune, Listener: listener}
}

func (w *Walker) skip(n schema.Node) bool {
	return w.Prune != nil && w.Prune(n)
}

// Walk visits n and, when the visitor asks for it, its subtree. The exit
// handler of n is called even when the subtree walk fails. The first error
// loading a referenced document stops the walk and is returned.
func (w *Walker) Walk(n schema.Node, v Visitor) error {
	if w.skip(n) {
		return nil
	}
	var err error
	// Visiting may change what the predicate answers, so it is asked again.
	if Dispatch(n, v) && !w.skip(n) {
		err = w.walkChildren(n, v)
	}
	DispatchExit(n, v)
	return err
}

func (w *Walker) walkChildren(n schema.Node, v Visitor) error {
	if ann := n.Annotation(); ann.Valid() {
		if err := w.Walk(ann, v); err != nil {
			return err
		}
	}
	if w.Listener != nil && n.Kind().IsSchemaLocation() {
		target, err := n.Referenced()
		if err != nil {
			return err
		}
		if target != nil {
			if err := w.WalkDocument(target, v); err != nil {
				return err
			}
		}
	}
	for i := range n.NumChildren() {
		if err := w.Walk(n.Child(i), v); err != nil {
			return err
		}
	}
	return nil
}

// WalkDocument walks the root of doc if the listener agrees to enter it.
// Without a listener the root is always walked.
func (w *Walker) WalkDocument(doc *schema.Document, v Visitor) error {
	if w.Listener == nil {
		return w.Walk(doc.Root(), v)
	}
	if !w.Listener.Enter(doc) {
		return nil
	}
	err := w.Walk(doc.Root(), v)
	w.Listener.Exit()
	return err
}

// SkipKinds returns a predicate skipping components of the given kinds.
func SkipKinds(kinds ...schema.Kind) Predicate {
	kinds = slices.Clone(kinds)
	return func(n schema.Node) bool {
		return slices.Contains(kinds, n.Kind())
	}
}

// SkipAnnotations skips annotations together with their documentation and
// appinfo content.
func SkipAnnotations(n schema.Node) bool {
	return n.Kind() == schema.KindAnnotation
}

// Any returns a predicate skipping a component when any of preds does. Nil
// predicates are ignored.
func Any(preds ...Predicate) Predicate {
	preds = slices.DeleteFunc(slices.Clone(preds), func(p Predicate) bool { return p == nil })
	return func(n schema.Node) bool {
		for _, p := range preds {
			if p(n) {
				return true
			}
		}
		return false
	}
}
