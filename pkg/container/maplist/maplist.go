// Package maplist provides an ordered map implementation backed by
// a sorted copy-on-write array of key-value pairs utilizing binary search.
//
// Search is O(log n), insertion and removal are O(n) because
// of the shifting of the tail of the array. For small and medium sized
// maps this is usually faster than tree or hash based maps.
package maplist

import (
	"reflect"

	"github.com/evolib/evo/pkg/aset"
	"github.com/evolib/evo/pkg/compare"
	"github.com/evolib/evo/pkg/container"
	"github.com/evolib/evo/pkg/cow"
	"github.com/evolib/evo/pkg/dataop"
	"github.com/evolib/evo/pkg/pair"
)

var _ container.Map[string, int] = &MapList[string, int, compare.Compare[string]]{}

// MapList is an ordered map with keys sorted by the comparator C.
// The zero value is a null map ready to use.
//
// MapList must not be copied by assignment, use SetFrom instead.
type MapList[K, V any, C compare.Comparer[K]] struct {
	d   cow.Array[pair.Pair[K, V]]
	cmp C
}

// New creates a new null map ordering keys ascending.
func New[K, V any]() *MapList[K, V, compare.Compare[K]] {
	return &MapList[K, V, compare.Compare[K]]{}
}

// NewWith creates a new null map ordering keys by c.
func NewWith[K, V any, C compare.Comparer[K]](c C) *MapList[K, V, C] {
	return &MapList[K, V, C]{cmp: c}
}

// Comparer returns the key comparator.
func (m *MapList[K, V, C]) Comparer() C { return m.cmp }

func (m *MapList[K, V, C]) Null() bool { return m.d.Null() }

func (m *MapList[K, V, C]) Empty() bool { return m.d.Len() == 0 }

func (m *MapList[K, V, C]) Size() int { return m.d.Len() }

func (m *MapList[K, V, C]) Capacity() int { return m.d.Cap() }

func (m *MapList[K, V, C]) Shared() bool { return m.d.Shared() }

// Ordered always returns true.
func (m *MapList[K, V, C]) Ordered() bool { return true }

func (m *MapList[K, V, C]) Unshare() { m.d.Unshare() }

// Reserve grows the capacity to hold at least n more items.
func (m *MapList[K, V, C]) Reserve(n int) { m.d.Reserve(n) }

func (m *MapList[K, V, C]) Set() { m.d.Release() }

// SetFrom replaces the contents of m with a copy of src.
// The storage of a MapList with the same ordering is shared
// instead of copied.
func (m *MapList[K, V, C]) SetFrom(src container.Map[K, V]) {
	if any(src) == any(m) {
		return
	}
	if o, ok := src.(*MapList[K, V, C]); ok && sameOrder(m.cmp, o.cmp) {
		m.d.Release()
		m.d = o.d.Share()
		return
	}
	m.d.Release()
	if src.Null() {
		return
	}
	m.d.SetEmpty(src.Size())
	container.Copy[K, V](m, src)
}

func (m *MapList[K, V, C]) SetEmpty() { m.d.SetEmpty(0) }

func (m *MapList[K, V, C]) Clear() { m.d.Clear() }

func (m *MapList[K, V, C]) Find(key K) *V {
	if i, found := m.index(key); found {
		return &m.d.At(i).Second
	}
	return nil
}

func (m *MapList[K, V, C]) FindM(key K) *V {
	if i, found := m.index(key); found {
		return &m.d.AtM(i).Second
	}
	return nil
}

func (m *MapList[K, V, C]) Get(key K) (value *V, created bool) {
	i, found := m.index(key)
	if found {
		return &m.d.AtM(i).Second, false
	}
	return &m.d.Insert(i, pair.Pair[K, V]{First: key}).Second, true
}

func (m *MapList[K, V, C]) Add(key K, value V, update bool) *V {
	i, found := m.index(key)
	if !found {
		return &m.d.Insert(i, pair.New(key, value)).Second
	}
	p := m.d.AtM(i)
	if update {
		p.Second = value
	}
	return &p.Second
}

func (m *MapList[K, V, C]) Remove(key K) bool {
	i, found := m.index(key)
	if found {
		m.d.Remove(i)
	}
	return found
}

func (m *MapList[K, V, C]) RemoveAt(
	pos *container.IterKey,
	dir container.Direction,
) bool {
	if !m.valid(*pos) {
		*pos = container.IterEnd
		return false
	}
	m.d.Remove(pos.A)
	m.reposition(pos, dir)
	return true
}

func (m *MapList[K, V, C]) TakeAt(
	pos *container.IterKey,
	dir container.Direction,
) (item pair.Pair[K, V], ok bool) {
	if !m.valid(*pos) {
		*pos = container.IterEnd
		return item, false
	}
	item = m.d.RemoveTake(pos.A)
	m.reposition(pos, dir)
	return item, true
}

// reposition moves pos from the index of a removed item
// in direction dir.
func (m *MapList[K, V, C]) reposition(
	pos *container.IterKey,
	dir container.Direction,
) {
	switch dir {
	case container.Forward:
		// The next item slid into the removed slot.
		if pos.A < m.d.Len() {
			return
		}
	case container.Reverse:
		if pos.A > 0 {
			pos.A--
			return
		}
	}
	*pos = container.IterEnd
}

func (m *MapList[K, V, C]) Move(
	src *container.Iter[K, V],
	dir container.Direction,
) bool {
	return container.Move[K, V](m, src, dir)
}

// Equal returns true if m and o hold equal items.
// Items are compared directly if o is a MapList with the same ordering,
// otherwise every key of m is looked up in o.
func (m *MapList[K, V, C]) Equal(o container.Map[K, V]) bool {
	if any(o) == any(m) {
		return true
	}
	if x, ok := o.(*MapList[K, V, C]); ok && sameOrder(m.cmp, x.cmp) {
		return dataop.For[pair.Pair[K, V]]().EqualN(m.d.Items(), x.d.Items())
	}
	return container.Equal[K, V](m, o)
}

func (m *MapList[K, V, C]) IterFirst(pos *container.IterKey) *pair.Pair[K, V] {
	return m.iterSet(pos, 0)
}

func (m *MapList[K, V, C]) IterLast(pos *container.IterKey) *pair.Pair[K, V] {
	return m.iterSet(pos, m.d.Len()-1)
}

func (m *MapList[K, V, C]) IterNext(pos *container.IterKey) *pair.Pair[K, V] {
	if pos.End() {
		return nil
	}
	return m.iterSet(pos, pos.A+1)
}

func (m *MapList[K, V, C]) IterPrev(pos *container.IterKey) *pair.Pair[K, V] {
	if pos.End() {
		return nil
	}
	return m.iterSet(pos, pos.A-1)
}

func (m *MapList[K, V, C]) IterAt(
	key K,
	pos *container.IterKey,
) *pair.Pair[K, V] {
	if i, found := m.index(key); found {
		return m.iterSet(pos, i)
	}
	*pos = container.IterEnd
	return nil
}

func (m *MapList[K, V, C]) IterGet(pos container.IterKey) *pair.Pair[K, V] {
	if !m.valid(pos) {
		return nil
	}
	return m.d.At(pos.A)
}

func (m *MapList[K, V, C]) IterGetM(pos container.IterKey) *pair.Pair[K, V] {
	if !m.valid(pos) {
		return nil
	}
	return m.d.AtM(pos.A)
}

// Iter returns an iterator over m positioned at the end.
func (m *MapList[K, V, C]) Iter() container.Iter[K, V] {
	return container.NewIter[K, V](m)
}

// Visit calls fn for every item in key order.
// Returns immediately if fn returns true.
func (m *MapList[K, V, C]) Visit(fn func(key K, value V) (stop bool)) {
	items := m.d.Items()
	for i := range items {
		if fn(items[i].First, items[i].Second) {
			break
		}
	}
}

// iterSet positions pos on index i if i is in range,
// otherwise at the end.
func (m *MapList[K, V, C]) iterSet(
	pos *container.IterKey,
	i int,
) *pair.Pair[K, V] {
	if i < 0 || i >= m.d.Len() {
		*pos = container.IterEnd
		return nil
	}
	*pos = container.IterKey{A: i}
	return m.d.At(i)
}

func (m *MapList[K, V, C]) valid(pos container.IterKey) bool {
	return pos.A >= 0 && pos.A < m.d.Len()
}

// index returns the index of key and true if it exists,
// otherwise returns the insertion index and false.
func (m *MapList[K, V, C]) index(key K) (i int, found bool) {
	items := m.d.Items()
	return aset.Search(len(items), func(i int) int {
		return m.cmp.Compare(items[i].First, key)
	})
}

// sameOrder returns true if a and b are known to order keys alike.
func sameOrder[C any](a, b C) bool {
	if e, ok := any(a).(interface{ Equal(C) bool }); ok {
		return e.Equal(b)
	}
	if t := reflect.TypeOf(a); t == nil || t.Comparable() {
		return any(a) == any(b)
	}
	return false
}
