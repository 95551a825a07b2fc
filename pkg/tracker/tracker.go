// Package tracker keeps the current-document context of a walk that crosses
// document boundaries.
package tracker

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/panbanda/xsdscope/internal/stack"
	"github.com/panbanda/xsdscope/pkg/schema"
	"github.com/panbanda/xsdscope/pkg/walk"
)

// Tracker implements walk.DocumentListener. It enters each document at most
// once per pass and exposes the register of the document being walked.
// A Tracker is not safe for concurrent use.
type Tracker struct {
	visited *roaring.Bitmap
	frames  stack.Stack[*schema.Document]
}

var _ walk.DocumentListener = (*Tracker)(nil)

// New creates a tracker with an empty visited set.
func New() *Tracker {
	return &Tracker{
		visited: roaring.New(),
		frames:  stack.New[*schema.Document](4),
	}
}

// Enter pushes doc unless it was already entered in this pass.
func (t *Tracker) Enter(doc *schema.Document) bool {
	if !t.visited.CheckedAdd(doc.Ordinal()) {
		return false
	}
	t.frames.Push(doc)
	return true
}

// Exit pops the current document.
func (t *Tracker) Exit() {
	t.Pop()
}

// Push makes doc current without consulting or updating the visited set.
func (t *Tracker) Push(doc *schema.Document) {
	t.frames.Push(doc)
}

// Pop restores the previously current document.
func (t *Tracker) Pop() {
	if _, ok := t.frames.Pop(); !ok {
		panic("tracker: pop without a current document")
	}
}

// CurrentDocument returns the document being walked. It panics when no
// document has been entered.
func (t *Tracker) CurrentDocument() *schema.Document {
	doc, ok := t.frames.Peek()
	if !ok {
		panic("tracker: no current document")
	}
	return doc
}

// CurrentRegister returns the register of the current document. It panics
// when no document has been entered.
func (t *Tracker) CurrentRegister() *schema.Register {
	return t.CurrentDocument().Register()
}

// Depth returns the number of pushed documents.
func (t *Tracker) Depth() int {
	return t.frames.Len()
}

// Visited reports whether doc was entered in this pass.
func (t *Tracker) Visited(doc *schema.Document) bool {
	return t.visited.Contains(doc.Ordinal())
}

// VisitedCount returns the number of documents entered in this pass.
func (t *Tracker) VisitedCount() int {
	return int(t.visited.GetCardinality())
}

// ClearVisited starts a new pass. It panics when documents are still pushed.
func (t *Tracker) ClearVisited() {
	if t.frames.Len() != 0 {
		panic("tracker: clear visited with documents still entered")
	}
	t.visited.Clear()
}

// Reset pops every document and clears the visited set. It is the recovery
// path after a walk was abandoned part way, for example by a panic.
func (t *Tracker) Reset() {
	t.frames.Reset()
	t.visited.Clear()
}
