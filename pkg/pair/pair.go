// Package pair provides a two-slot aggregate used as the storage
// element of maps.
package pair

import (
	"reflect"

	"github.com/evolib/evo/pkg/dataop"
	"github.com/evolib/evo/pkg/typeid"
)

var (
	_ typeid.Item[Pair[int, int]]   = &Pair[int, int]{}
	_ typeid.Copier[Pair[int, int]] = Pair[int, int]{}
)

// Pair holds two independently owned values.
// Pairs are ordered lexicographically, First then Second.
type Pair[A, B any] struct {
	First  A
	Second B
}

// New returns a new pair.
func New[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Null returns true if both First and Second are in their unset state.
func (p Pair[A, B]) Null() bool {
	return isNull(&p.First) && isNull(&p.Second)
}

// Clear resets both values.
func (p *Pair[A, B]) Clear() {
	clearValue(&p.First)
	clearValue(&p.Second)
}

func (p Pair[A, B]) Compare(o Pair[A, B]) int {
	if c := dataop.For[A]().Compare(p.First, o.First); c != 0 {
		return c
	}
	return dataop.For[B]().Compare(p.Second, o.Second)
}

func (p Pair[A, B]) Equal(o Pair[A, B]) bool {
	return dataop.For[A]().Equal(p.First, o.First) &&
		dataop.For[B]().Equal(p.Second, o.Second)
}

// Hash chains the hash of First and then Second onto seed.
func (p Pair[A, B]) Hash(seed uint64) uint64 {
	seed = dataop.For[A]().Hash(p.First, seed)
	return dataop.For[B]().Hash(p.Second, seed)
}

// Copy returns an independent copy of p.
func (p Pair[A, B]) Copy() (c Pair[A, B]) {
	dataop.For[A]().Copy(&c.First, p.First)
	dataop.For[B]().Copy(&c.Second, p.Second)
	return c
}

func isNull[T any](v *T) bool {
	if i, ok := any(v).(typeid.Item[T]); ok {
		return i.Null()
	}
	return reflect.ValueOf(v).Elem().IsZero()
}

func clearValue[T any](v *T) {
	if i, ok := any(v).(typeid.Item[T]); ok {
		i.Clear()
		return
	}
	var z T
	*v = z
}
