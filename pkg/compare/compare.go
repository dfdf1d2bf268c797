// Package compare provides comparison and hash functors that can be
// plugged into containers as their ordering and hashing strategy.
//
// All functors are empty structs except Func, which wraps
// a function value.
package compare

import (
	"reflect"

	"github.com/evolib/evo/pkg/dataop"
)

// Comparer defines the ordering of T.
type Comparer[T any] interface {
	Compare(a, b T) int
}

// Hasher defines the hash of T.
type Hasher[T any] interface {
	Hash(v T, seed uint64) uint64
}

// CompareHasher defines both ordering and hash of T,
// as required by hashed containers.
type CompareHasher[T any] interface {
	Comparer[T]
	Hasher[T]
}

var (
	_ Comparer[int]      = Compare[int]{}
	_ Comparer[int]      = CompareR[int]{}
	_ Comparer[string]   = CompareI[string]{}
	_ Comparer[[]byte]   = CompareIR[[]byte]{}
	_ Hasher[int]        = Hash[int]{}
	_ CompareHasher[int] = CompareHash[int]{}
	_ Comparer[int]      = Func[int]{}
)

// Compare orders T ascending.
type Compare[T any] struct{}

func (Compare[T]) Compare(a, b T) int { return dataop.For[T]().Compare(a, b) }

// CompareR orders T descending.
type CompareR[T any] struct{}

func (CompareR[T]) Compare(a, b T) int { return dataop.For[T]().Compare(b, a) }

// Hash hashes T.
type Hash[T any] struct{}

func (Hash[T]) Hash(v T, seed uint64) uint64 { return dataop.For[T]().Hash(v, seed) }

// CompareHash orders T ascending and hashes it.
type CompareHash[T any] struct{}

func (CompareHash[T]) Compare(a, b T) int { return dataop.For[T]().Compare(a, b) }

func (CompareHash[T]) Hash(v T, seed uint64) uint64 {
	return dataop.For[T]().Hash(v, seed)
}

// Func is a comparison functor wrapping a function.
// Calling Compare on a Func with a nil Fn panics.
type Func[T any] struct {
	Fn func(a, b T) int
}

func (f Func[T]) Compare(a, b T) int { return f.Fn(a, b) }

// Equal returns true if f and o wrap the same function.
func (f Func[T]) Equal(o Func[T]) bool {
	return reflect.ValueOf(f.Fn).Pointer() == reflect.ValueOf(o.Fn).Pointer()
}
