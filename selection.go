package picker

import (
	"sync"

	"github.com/google/btree"
)

// selected is one multi-select entry, ordered by the index the item had in
// the match snapshot at the time it was selected.
type selected[T any] struct {
	idx  int
	item *T
}

func (s selected[T]) Less(than btree.Item) bool {
	return s.idx < than.(selected[T]).idx
}

// Selection tracks the set of items a multi-select picker session has
// toggled on, ordered by selection order's underlying index so Items()
// replays them in a stable, predictable order. Generalized from the
// teacher's selection.Set, which stored line.Line values keyed by the
// line's own ordering.
type Selection[T any] struct {
	mu   sync.RWMutex
	tree *btree.BTree
}

// NewSelection returns an empty Selection.
func NewSelection[T any]() *Selection[T] {
	return &Selection[T]{tree: btree.New(32)}
}

// Toggle flips whether the item at idx is selected, returning the new
// state (true if it is now selected).
func (s *Selection[T]) Toggle(idx int, item *T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := selected[T]{idx: idx}
	if s.tree.Has(key) {
		s.tree.Delete(key)
		return false
	}
	s.tree.ReplaceOrInsert(selected[T]{idx: idx, item: item})
	return true
}

// Has reports whether idx is currently selected.
func (s *Selection[T]) Has(idx int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Has(selected[T]{idx: idx})
}

// Len returns the number of selected items.
func (s *Selection[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

// Reset clears the selection.
func (s *Selection[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = btree.New(32)
}

// Items returns the selected items in ascending index order.
func (s *Selection[T]) Items() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, s.tree.Len())
	s.tree.Ascend(func(it btree.Item) bool {
		out = append(out, it.(selected[T]).item)
		return true
	})
	return out
}
