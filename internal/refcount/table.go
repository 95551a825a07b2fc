// Package refcount implements the open-addressing count table backing the
// usage analyzer.
package refcount

import (
	"encoding/binary"
	"iter"

	"github.com/cespare/xxhash/v2"
)

const (
	minCapacity = 16
	// Growth is triggered once more than loadNum/loadDen of the slots are used.
	loadNum = 3
	loadDen = 10
)

// HashUint64 hashes an integer key with xxhash.
func HashUint64(k uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], k)
	return xxhash.Sum64(buf[:])
}

type slot[K comparable] struct {
	key   K
	count int
}

// Table maps keys to positive counts using linear probing. A slot with a
// zero count is empty. The zero Table is not usable; call New.
type Table[K comparable] struct {
	hash  func(K) uint64
	slots []slot[K]
	order []K
	used  int
}

// New creates a table with room for at least capacity keys before growing.
func New[K comparable](hash func(K) uint64, capacity int) *Table[K] {
	t := &Table[K]{hash: hash}
	t.slots = make([]slot[K], slotsFor(capacity))
	return t
}

func slotsFor(capacity int) int {
	n := minCapacity
	for n*loadNum/loadDen < capacity {
		n <<= 1
	}
	return n
}

func (t *Table[K]) index(k K) int {
	mask := len(t.slots) - 1
	i := int(t.hash(k) & uint64(mask))
	for {
		s := &t.slots[i]
		if s.count == 0 || s.key == k {
			return i
		}
		i = (i + 1) & mask
	}
}

// Increment adds one to the count of k and returns the new count.
func (t *Table[K]) Increment(k K) int {
	i := t.index(k)
	s := &t.slots[i]
	if s.count > 0 {
		s.count++
		return s.count
	}
	s.key = k
	s.count = 1
	t.used++
	t.order = append(t.order, k)
	if t.used*loadDen > len(t.slots)*loadNum {
		t.grow()
	}
	return 1
}

// Count returns the count of k, or 0 when k was never incremented.
func (t *Table[K]) Count(k K) int {
	return t.slots[t.index(k)].count
}

// Len returns the number of distinct keys.
func (t *Table[K]) Len() int { return t.used }

// Capacity returns the number of slots.
func (t *Table[K]) Capacity() int { return len(t.slots) }

// Keys returns the keys in first-increment order.
func (t *Table[K]) Keys() []K {
	out := make([]K, len(t.order))
	copy(out, t.order)
	return out
}

// All iterates keys and counts in first-increment order.
func (t *Table[K]) All() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for _, k := range t.order {
			if !yield(k, t.Count(k)) {
				return
			}
		}
	}
}

// Reset removes every key while keeping the current capacity.
func (t *Table[K]) Reset() {
	clear(t.slots)
	t.order = t.order[:0]
	t.used = 0
}

func (t *Table[K]) grow() {
	old := t.slots
	t.slots = make([]slot[K], len(old)*2)
	for _, s := range old {
		if s.count == 0 {
			continue
		}
		t.slots[t.index(s.key)] = s
	}
}
