package typeid

// Item is the capability contract a type must satisfy to be used
// as a container key or value with full feature support.
// Methods may be declared on either T or *T.
type Item[T any] interface {
	// Null returns true if the item is in its unset state.
	Null() bool
	// Clear resets the item to its empty state.
	Clear()
	// Compare returns a negative number, zero or a positive number
	// if the item is less than, equal to or greater than other.
	Compare(other T) int
	Equal(other T) bool
	// Hash returns the hash of the item chained onto seed.
	Hash(seed uint64) uint64
}

// ItemPtr is used as a constraint to check the Item capability
// at compile time.
type ItemPtr[T any] interface {
	*T
	Item[T]
}

// Copier is implemented by Normal types that need more than
// an assignment to produce an independent copy.
type Copier[T any] interface {
	Copy() T
}

// Container is the capability contract of containers.
type Container interface {
	Null() bool
	Empty() bool
	Size() int
	Shared() bool
}

// IsItem returns true if T implements the Item capability.
func IsItem[T any]() bool {
	_, ok := any((*T)(nil)).(Item[T])
	return ok
}

// IsContainer returns true if T or *T implements Container.
func IsContainer[T any]() bool {
	var z T
	if _, ok := any(z).(Container); ok {
		return true
	}
	_, ok := any(&z).(Container)
	return ok
}

// IsCopier returns true if T or *T implements Copier.
func IsCopier[T any]() bool {
	_, ok := any((*T)(nil)).(Copier[T])
	return ok
}
