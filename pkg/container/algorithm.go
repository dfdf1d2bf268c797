package container

import (
	"github.com/evolib/evo/pkg/dataop"
	"github.com/evolib/evo/pkg/pair"
)

// Equal returns true if a and b hold the same keys associated with
// equal values regardless of their implementation and order.
// Null and empty maps are equal.
func Equal[K, V any](a, b Map[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	eq := dataop.For[V]().Equal
	var pos IterKey
	for p := a.IterFirst(&pos); p != nil; p = a.IterNext(&pos) {
		v := b.Find(p.First)
		if v == nil || !eq(p.Second, *v) {
			return false
		}
	}
	return true
}

// Move moves the item src points to from its map into dst
// and positions src in direction dir.
//
// If the key already exists in dst its value is overwritten
// with the moved one. Moving within the same map does nothing.
// Returns false if nothing was moved.
func Move[K, V any](dst Map[K, V], src *Iter[K, V], dir Direction) bool {
	if src.m == nil || src.End() || any(src.m) == any(dst) {
		return false
	}
	p, ok := src.m.TakeAt(&src.key, dir)
	if !ok {
		return false
	}
	dst.Add(p.First, p.Second, true)
	return true
}

// Copy adds independent copies of all items of src to dst,
// overwriting existing keys, and returns the number of copied items.
func Copy[K, V any](dst, src Map[K, V]) (count int) {
	if any(src) == any(dst) {
		return 0
	}
	var pos IterKey
	for p := src.IterFirst(&pos); p != nil; p = src.IterNext(&pos) {
		c := p.Copy()
		dst.Add(c.First, c.Second, true)
		count++
	}
	return count
}

// Visit calls fn for every item of m in iteration order.
// Returns immediately if fn returns true.
func Visit[K, V any](m Map[K, V], fn func(key K, value V) (stop bool)) {
	var pos IterKey
	for p := m.IterFirst(&pos); p != nil; p = m.IterNext(&pos) {
		if fn(p.First, p.Second) {
			return
		}
	}
}

// Items returns copies of all items of m in iteration order.
func Items[K, V any](m Map[K, V]) []pair.Pair[K, V] {
	if m.Size() < 1 {
		return nil
	}
	items := make([]pair.Pair[K, V], 0, m.Size())
	var pos IterKey
	for p := m.IterFirst(&pos); p != nil; p = m.IterNext(&pos) {
		items = append(items, p.Copy())
	}
	return items
}
