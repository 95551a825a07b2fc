// Package stack implements the frame stack used while walking nested
// schema documents.
package stack

// Stack is a slice-backed LIFO. The zero value is an empty stack; a nil
// *Stack behaves as an empty one for reads.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity frames.
func New[T any](capacity int) Stack[T] {
	return Stack[T]{items: make([]T, 0, max(capacity, 0))}
}

// Push makes v the top frame.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes the top frame. The vacated slot is zeroed so popped
// documents are not kept alive by the backing array.
func (s *Stack[T]) Pop() (T, bool) {
	v, ok := s.Peek()
	if ok {
		n := len(s.items) - 1
		var zero T
		s.items[n] = zero
		s.items = s.items[:n]
	}
	return v, ok
}

// Peek returns the top frame.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if s.Len() == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of frames.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Reset drops every frame and keeps the backing array for reuse.
func (s *Stack[T]) Reset() {
	if s.Len() == 0 {
		return
	}
	clear(s.items)
	s.items = s.items[:0]
}
