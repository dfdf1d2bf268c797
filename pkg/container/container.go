// Package container defines the contract of associative containers
// and the algorithms that work on any of its implementations.
package container

import (
	"strconv"

	"github.com/evolib/evo/pkg/pair"
	"github.com/evolib/evo/pkg/typeid"
)

// Direction defines where an iterator is positioned to
// after the element it points to is removed.
type Direction int8

const (
	// None ends the iterator.
	None Direction = iota
	// Forward positions the iterator on the next element.
	Forward
	// Reverse positions the iterator on the previous element.
	Reverse
)

func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// IterKey is the opaque position of an iterator in a map.
// The meaning of A and B is defined by the map implementation.
type IterKey struct{ A, B int }

// IterEnd is the end position.
var IterEnd = IterKey{A: -1, B: -1}

// End returns true if k is the end position.
func (k IterKey) End() bool { return k.A < 0 }

// Map is an associative container of unique keys.
//
// A Map is either null, which is the state of a newly created map,
// or holds storage, which may be empty. Storage may be shared
// with other maps and is privatized before any mutation.
//
// Pointers returned by Find, FindM, Get, Add and the Iter methods
// borrow the storage of the map and are valid until the next mutation.
// Only pointers returned by methods that unshare the map
// (FindM, Get, Add, IterGetM) may be written to.
//
// Values are stored as passed. Keys and values holding references
// (like []byte) are aliased until the map copies them on unshare.
type Map[K, V any] interface {
	typeid.Container

	// Set makes the map null.
	Set()

	// SetFrom replaces the contents of the map with a copy of src.
	SetFrom(src Map[K, V])

	// SetEmpty makes the map empty and non-null.
	SetEmpty()

	// Clear removes all items preserving the null state.
	Clear()

	// Capacity returns the number of items the map can hold
	// before growing its storage.
	Capacity() int

	// Ordered returns true if the map iterates in key order.
	Ordered() bool

	// Unshare makes the storage private.
	Unshare()

	// Find returns a read-only pointer to the value of key
	// or nil if key doesn't exist.
	Find(key K) *V

	// FindM is Find returning a mutable pointer.
	FindM(key K) *V

	// Get returns a pointer to the value of key, adding key
	// with a zero value first if it doesn't exist.
	Get(key K) (value *V, created bool)

	// Add adds key with value. If key already exists its value
	// is overwritten only if update is true.
	// Returns a pointer to the value associated with key.
	Add(key K, value V, update bool) *V

	// Remove removes key and returns true if it existed.
	Remove(key K) bool

	// RemoveAt removes the item at pos and moves pos in direction dir.
	// Returns false if pos is at the end.
	//
	// Other positions on the same map aren't adjusted
	// and may point to a different item afterwards.
	RemoveAt(pos *IterKey, dir Direction) bool

	// TakeAt is RemoveAt returning the removed item.
	// The ownership of the item is transferred to the caller.
	TakeAt(pos *IterKey, dir Direction) (item pair.Pair[K, V], ok bool)

	// Move moves the item src points to from its map into this map
	// and moves src in direction dir. See the package function Move.
	Move(src *Iter[K, V], dir Direction) bool

	// Equal returns true if the map has the same items as o.
	Equal(o Map[K, V]) bool

	// IterFirst positions pos on the first item and returns it.
	// Returns nil and positions pos at the end if the map is empty.
	IterFirst(pos *IterKey) *pair.Pair[K, V]

	// IterLast positions pos on the last item and returns it.
	IterLast(pos *IterKey) *pair.Pair[K, V]

	// IterNext positions pos on the next item and returns it.
	IterNext(pos *IterKey) *pair.Pair[K, V]

	// IterPrev positions pos on the previous item and returns it.
	IterPrev(pos *IterKey) *pair.Pair[K, V]

	// IterAt positions pos on the item with key and returns it.
	// Positions pos at the end and returns nil if key doesn't exist.
	IterAt(key K, pos *IterKey) *pair.Pair[K, V]

	// IterGet returns a read-only pointer to the item at pos.
	IterGet(pos IterKey) *pair.Pair[K, V]

	// IterGetM unshares the map and returns the item at pos.
	// The key of the item must not be modified.
	IterGetM(pos IterKey) *pair.Pair[K, V]
}
