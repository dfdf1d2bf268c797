// package hamap provides a collision-safe hashmap implementation
// which is more efficient than Go's native map for small datasets.
// Buckets are kept sorted by key hash in a copy-on-write array
// and searched using binary search. Keys with colliding hashes are
// chained within their bucket.
// Any custom compare-hasher can be provided during initialization.
// By default, compare.CompareHash is used, which hashes strings and
// byte slices with XXH3 from github.com/zeebo/xxh3.
package hamap

import (
	"reflect"

	"github.com/evolib/evo/pkg/aset"
	"github.com/evolib/evo/pkg/compare"
	"github.com/evolib/evo/pkg/container"
	"github.com/evolib/evo/pkg/cow"
	"github.com/evolib/evo/pkg/pair"
)

var _ container.Map[string, int] = &Map[string, int, compare.CompareHash[string]]{}

type bucket[K, V any] struct {
	KeyHash uint64
	Chain   []pair.Pair[K, V]
}

// Copy returns an independent copy of b.
func (b bucket[K, V]) Copy() bucket[K, V] {
	c := bucket[K, V]{
		KeyHash: b.KeyHash,
		Chain:   make([]pair.Pair[K, V], len(b.Chain)),
	}
	for i := range b.Chain {
		c.Chain[i] = b.Chain[i].Copy()
	}
	return c
}

// Map is backed by a slice of buckets and utilizes binary search.
// The zero value is a null map ready to use.
// Iteration order is defined by the key hashes and is
// not related to the order of the keys.
//
// Map must not be copied by assignment, use SetFrom instead.
type Map[K, V any, H compare.CompareHasher[K]] struct {
	size int
	d    cow.Array[bucket[K, V]]
	h    H
	seed uint64
}

// New creates a new null map instance.
func New[K, V any]() *Map[K, V, compare.CompareHash[K]] {
	return &Map[K, V, compare.CompareHash[K]]{}
}

// NewWith creates a new null map instance using h for keys
// and seed as the seed of all key hashes.
func NewWith[K, V any, H compare.CompareHasher[K]](
	h H,
	seed uint64,
) *Map[K, V, H] {
	return &Map[K, V, H]{h: h, seed: seed}
}

func (m *Map[K, V, H]) Null() bool { return m.d.Null() }

func (m *Map[K, V, H]) Empty() bool { return m.size == 0 }

// Size returns the number of stored key-value pairs.
func (m *Map[K, V, H]) Size() int { return m.size }

// Capacity returns the number of buckets the map can hold
// before growing.
func (m *Map[K, V, H]) Capacity() int { return m.d.Cap() }

func (m *Map[K, V, H]) Shared() bool { return m.d.Shared() }

// Ordered always returns false.
func (m *Map[K, V, H]) Ordered() bool { return false }

func (m *Map[K, V, H]) Unshare() { m.d.Unshare() }

func (m *Map[K, V, H]) Set() {
	m.d.Release()
	m.size = 0
}

// SetFrom replaces the contents of m with a copy of src.
// The storage of a Map with the same hasher and seed is shared
// instead of copied.
func (m *Map[K, V, H]) SetFrom(src container.Map[K, V]) {
	if any(src) == any(m) {
		return
	}
	if o, ok := src.(*Map[K, V, H]); ok && m.sameHash(o) {
		m.d.Release()
		m.d, m.size = o.d.Share(), o.size
		return
	}
	m.Set()
	if src.Null() {
		return
	}
	m.d.SetEmpty(src.Size())
	container.Copy[K, V](m, src)
}

func (m *Map[K, V, H]) SetEmpty() {
	m.d.SetEmpty(0)
	m.size = 0
}

// Clear resets the map reusing its memory unless it's shared.
func (m *Map[K, V, H]) Clear() {
	m.d.Clear()
	m.size = 0
}

func (m *Map[K, V, H]) Find(key K) *V {
	if i, j := m.find(key); j >= 0 {
		return &m.d.At(i).Chain[j].Second
	}
	return nil
}

func (m *Map[K, V, H]) FindM(key K) *V {
	if i, j := m.find(key); j >= 0 {
		return &m.d.AtM(i).Chain[j].Second
	}
	return nil
}

// Get returns a pointer to the value of key adding key first
// if it doesn't exist.
func (m *Map[K, V, H]) Get(key K) (value *V, created bool) {
	p, created := m.set(key)
	return &p.Second, created
}

// Add associates key with value. An existing association
// is overwritten only if update is true.
func (m *Map[K, V, H]) Add(key K, value V, update bool) *V {
	p, created := m.set(key)
	if created || update {
		p.Second = value
	}
	return &p.Second
}

// set returns the pair of key creating it if it doesn't exist yet.
func (m *Map[K, V, H]) set(key K) (p *pair.Pair[K, V], created bool) {
	hash := m.h.Hash(key, m.seed)
	i, found := m.index(hash)
	if !found {
		m.size++
		b := m.d.Insert(i, bucket[K, V]{
			KeyHash: hash,
			Chain:   []pair.Pair[K, V]{{First: key}},
		})
		return &b.Chain[0], true
	}

	b := m.d.AtM(i)
	for j := range b.Chain {
		if m.h.Compare(b.Chain[j].First, key) == 0 {
			return &b.Chain[j], false
		}
	}
	// Hash collision
	m.size++
	b.Chain = append(b.Chain, pair.Pair[K, V]{First: key})
	return &b.Chain[len(b.Chain)-1], true
}

// Remove deletes the key if it exists.
func (m *Map[K, V, H]) Remove(key K) bool {
	i, j := m.find(key)
	if j < 0 {
		return false
	}
	m.removeAt(i, j)
	return true
}

func (m *Map[K, V, H]) RemoveAt(
	pos *container.IterKey,
	dir container.Direction,
) bool {
	_, ok := m.TakeAt(pos, dir)
	return ok
}

func (m *Map[K, V, H]) TakeAt(
	pos *container.IterKey,
	dir container.Direction,
) (item pair.Pair[K, V], ok bool) {
	if !m.valid(*pos) {
		*pos = container.IterEnd
		return item, false
	}
	i, j := pos.A, pos.B
	item, bucketRemoved := m.removeAt(i, j)

	switch dir {
	case container.Forward:
		switch {
		case bucketRemoved && i < m.d.Len():
			// The next bucket slid into the removed slot.
			*pos = container.IterKey{A: i}
			return item, true
		case bucketRemoved:
		case j < len(m.d.At(i).Chain):
			return item, true
		case i+1 < m.d.Len():
			*pos = container.IterKey{A: i + 1}
			return item, true
		}
	case container.Reverse:
		switch {
		case j > 0:
			pos.B--
			return item, true
		case i > 0:
			*pos = container.IterKey{A: i - 1, B: len(m.d.At(i-1).Chain) - 1}
			return item, true
		}
	}
	*pos = container.IterEnd
	return item, true
}

// removeAt removes the pair at index j of the chain of bucket i
// and removes the bucket if its chain becomes empty.
func (m *Map[K, V, H]) removeAt(i, j int) (
	item pair.Pair[K, V],
	bucketRemoved bool,
) {
	m.size--
	b := m.d.AtM(i)
	item = b.Chain[j]
	if len(b.Chain) == 1 {
		m.d.Remove(i)
		return item, true
	}
	copy(b.Chain[j:], b.Chain[j+1:])
	clear(b.Chain[len(b.Chain)-1:])
	b.Chain = b.Chain[:len(b.Chain)-1]
	return item, false
}

func (m *Map[K, V, H]) Move(
	src *container.Iter[K, V],
	dir container.Direction,
) bool {
	return container.Move[K, V](m, src, dir)
}

// Equal returns true if m and o hold equal items.
func (m *Map[K, V, H]) Equal(o container.Map[K, V]) bool {
	if any(o) == any(m) {
		return true
	}
	return container.Equal[K, V](m, o)
}

func (m *Map[K, V, H]) IterFirst(pos *container.IterKey) *pair.Pair[K, V] {
	return m.iterSet(pos, 0, 0)
}

func (m *Map[K, V, H]) IterLast(pos *container.IterKey) *pair.Pair[K, V] {
	i := m.d.Len() - 1
	if i < 0 {
		*pos = container.IterEnd
		return nil
	}
	return m.iterSet(pos, i, len(m.d.At(i).Chain)-1)
}

func (m *Map[K, V, H]) IterNext(pos *container.IterKey) *pair.Pair[K, V] {
	if !m.valid(*pos) {
		*pos = container.IterEnd
		return nil
	}
	if pos.B+1 < len(m.d.At(pos.A).Chain) {
		return m.iterSet(pos, pos.A, pos.B+1)
	}
	return m.iterSet(pos, pos.A+1, 0)
}

func (m *Map[K, V, H]) IterPrev(pos *container.IterKey) *pair.Pair[K, V] {
	if !m.valid(*pos) {
		*pos = container.IterEnd
		return nil
	}
	if pos.B > 0 {
		return m.iterSet(pos, pos.A, pos.B-1)
	}
	if pos.A < 1 {
		*pos = container.IterEnd
		return nil
	}
	return m.iterSet(pos, pos.A-1, len(m.d.At(pos.A-1).Chain)-1)
}

func (m *Map[K, V, H]) IterAt(
	key K,
	pos *container.IterKey,
) *pair.Pair[K, V] {
	if i, j := m.find(key); j >= 0 {
		return m.iterSet(pos, i, j)
	}
	*pos = container.IterEnd
	return nil
}

func (m *Map[K, V, H]) IterGet(pos container.IterKey) *pair.Pair[K, V] {
	if !m.valid(pos) {
		return nil
	}
	return &m.d.At(pos.A).Chain[pos.B]
}

func (m *Map[K, V, H]) IterGetM(pos container.IterKey) *pair.Pair[K, V] {
	if !m.valid(pos) {
		return nil
	}
	return &m.d.AtM(pos.A).Chain[pos.B]
}

// Iter returns an iterator over m positioned at the end.
func (m *Map[K, V, H]) Iter() container.Iter[K, V] {
	return container.NewIter[K, V](m)
}

// Visit calls fn for every stored key-value pair.
// Returns immediately if fn returns true.
func (m *Map[K, V, H]) Visit(fn func(key K, value V) (stop bool)) {
	buckets := m.d.Items()
	for i := range buckets {
		for j := range buckets[i].Chain {
			if fn(buckets[i].Chain[j].First, buckets[i].Chain[j].Second) {
				return
			}
		}
	}
}

// VisitAll calls fn for every stored key-value pair.
func (m *Map[K, V, H]) VisitAll(fn func(key K, value V)) {
	m.Visit(func(key K, value V) bool {
		fn(key, value)
		return false
	})
}

// Values returns all map values
func (m *Map[K, V, H]) Values() (values []V) {
	m.VisitAll(func(key K, value V) {
		values = append(values, value)
	})

	return
}

func (m *Map[K, V, H]) iterSet(
	pos *container.IterKey,
	i, j int,
) *pair.Pair[K, V] {
	p := container.IterKey{A: i, B: j}
	if !m.valid(p) {
		*pos = container.IterEnd
		return nil
	}
	*pos = p
	return &m.d.At(i).Chain[j]
}

func (m *Map[K, V, H]) valid(pos container.IterKey) bool {
	return pos.A >= 0 && pos.A < m.d.Len() &&
		pos.B >= 0 && pos.B < len(m.d.At(pos.A).Chain)
}

// find returns the bucket index and the chain index of key.
// The chain index is -1 if key doesn't exist.
func (m *Map[K, V, H]) find(key K) (i, j int) {
	hash := m.h.Hash(key, m.seed)
	i, found := m.index(hash)
	if !found {
		return i, -1
	}
	b := m.d.At(i)
	for j := range b.Chain {
		if m.h.Compare(b.Chain[j].First, key) == 0 {
			return i, j
		}
	}
	return i, -1
}

func (m *Map[K, V, H]) index(keyHash uint64) (i int, found bool) {
	buckets := m.d.Items()
	return aset.Search(len(buckets), func(i int) int {
		switch h := buckets[i].KeyHash; {
		case h < keyHash:
			return -1
		case h > keyHash:
			return 1
		}
		return 0
	})
}

func (m *Map[K, V, H]) sameHash(o *Map[K, V, H]) bool {
	if m.seed != o.seed {
		return false
	}
	if e, ok := any(m.h).(interface{ Equal(H) bool }); ok {
		return e.Equal(o.h)
	}
	if t := reflect.TypeOf(m.h); t == nil || t.Comparable() {
		return any(m.h) == any(o.h)
	}
	return false
}
