package container

import "github.com/evolib/evo/pkg/pair"

// Iter is a bidirectional cursor over a Map.
// A new Iter is positioned at the end.
type Iter[K, V any] struct {
	m   Map[K, V]
	key IterKey
}

// NewIter returns an iterator over m positioned at the end.
func NewIter[K, V any](m Map[K, V]) Iter[K, V] {
	return Iter[K, V]{m: m, key: IterEnd}
}

// Map returns the map the iterator belongs to.
func (i *Iter[K, V]) Map() Map[K, V] { return i.m }

// Pos returns the current position.
func (i *Iter[K, V]) Pos() IterKey { return i.key }

// End returns true if the iterator is at the end.
func (i *Iter[K, V]) End() bool { return i.key.End() }

// First positions the iterator on the first item.
// Returns false if the map is empty.
func (i *Iter[K, V]) First() bool { return i.m.IterFirst(&i.key) != nil }

// Last positions the iterator on the last item.
// Returns false if the map is empty.
func (i *Iter[K, V]) Last() bool { return i.m.IterLast(&i.key) != nil }

// Next moves the iterator forward.
// Returns false when it reaches the end.
func (i *Iter[K, V]) Next() bool { return i.m.IterNext(&i.key) != nil }

// Prev moves the iterator backward.
// Returns false when it reaches the end.
func (i *Iter[K, V]) Prev() bool { return i.m.IterPrev(&i.key) != nil }

// At positions the iterator on key.
// Returns false and positions the iterator at the end
// if key doesn't exist.
func (i *Iter[K, V]) At(key K) bool { return i.m.IterAt(key, &i.key) != nil }

// Pair returns a read-only pointer to the current item
// or nil at the end.
func (i *Iter[K, V]) Pair() *pair.Pair[K, V] { return i.m.IterGet(i.key) }

// PairM unshares the map and returns the current item or nil at the end.
// The key must not be modified.
func (i *Iter[K, V]) PairM() *pair.Pair[K, V] { return i.m.IterGetM(i.key) }

// Key returns the current key or the zero value at the end.
func (i *Iter[K, V]) Key() (k K) {
	if p := i.Pair(); p != nil {
		return p.First
	}
	return k
}

// Value returns a read-only pointer to the current value
// or nil at the end.
func (i *Iter[K, V]) Value() *V {
	if p := i.Pair(); p != nil {
		return &p.Second
	}
	return nil
}

// ValueM unshares the map and returns the current value
// or nil at the end.
func (i *Iter[K, V]) ValueM() *V {
	if p := i.PairM(); p != nil {
		return &p.Second
	}
	return nil
}

// Remove removes the current item and moves the iterator
// in direction dir.
func (i *Iter[K, V]) Remove(dir Direction) bool {
	return i.m.RemoveAt(&i.key, dir)
}
