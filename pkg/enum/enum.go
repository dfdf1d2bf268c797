// Package enum maps integer enumeration values to names and back
// using sorted lookup tables.
package enum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/evolib/evo/pkg/compare"
	"github.com/evolib/evo/pkg/container"
	"github.com/evolib/evo/pkg/container/maplist"
	"github.com/evolib/evo/pkg/convert"
	"github.com/evolib/evo/pkg/pair"
	"golang.org/x/exp/constraints"
)

var (
	ErrUnknown   = errors.New("unknown name")
	ErrDuplicate = errors.New("duplicate")
	ErrEmpty     = errors.New("no values defined")
)

// Enum is an immutable two-way mapping between names and values.
// Names are matched case-insensitively.
type Enum[T constraints.Integer] struct {
	byName  maplist.MapList[string, T, compare.CompareI[string]]
	byValue maplist.MapList[T, string, compare.Compare[T]]
}

// New creates an enum assigning the values 0..len(names)-1 to names.
// Panics if a name is empty or defined twice.
func New[T constraints.Integer](names ...string) *Enum[T] {
	e := &Enum[T]{}
	for i, n := range names {
		if err := e.add(n, T(i)); err != nil {
			panic(err)
		}
	}
	return e
}

// Of creates an enum from name-value pairs.
func Of[T constraints.Integer](items ...pair.Pair[string, T]) (*Enum[T], error) {
	e := &Enum[T]{}
	for _, p := range items {
		if err := e.add(p.First, p.Second); err != nil {
			return nil, err
		}
	}
	if e.Size() < 1 {
		return nil, ErrEmpty
	}
	return e, nil
}

// Parse creates an enum from a definition such as "debug=0,info=1".
// Names without a value are assigned the value following
// the previous one, starting at 0.
func Parse[T constraints.Integer](def string) (e *Enum[T], err error) {
	e = &Enum[T]{}
	var next T
	container.Split(def, ",", "=", func(n, v string, hasValue bool) bool {
		name, value := strings.TrimSpace(n), next
		if name == "" && !hasValue {
			return false
		}
		if hasValue {
			if value, err = convert.String[T](strings.TrimSpace(v)); err != nil {
				err = fmt.Errorf("value of %q: %w", name, err)
				return true
			}
		}
		if err = e.add(name, value); err != nil {
			return true
		}
		next = value + 1
		return false
	})
	if err != nil {
		return nil, err
	}
	if e.Size() < 1 {
		return nil, ErrEmpty
	}
	return e, nil
}

func (e *Enum[T]) add(name string, value T) error {
	if name == "" {
		return fmt.Errorf("empty name for value %d", value)
	}
	if _, created := e.byName.Get(name); !created {
		return fmt.Errorf("name %q: %w", name, ErrDuplicate)
	}
	if _, created := e.byValue.Get(value); !created {
		e.byName.Remove(name)
		return fmt.Errorf("value %d: %w", value, ErrDuplicate)
	}
	*e.byName.FindM(name) = value
	*e.byValue.FindM(value) = name
	return nil
}

// Size returns the number of defined values.
func (e *Enum[T]) Size() int { return e.byValue.Size() }

// Name returns the name of v and true,
// or an empty string and false if v isn't defined.
func (e *Enum[T]) Name(v T) (string, bool) {
	if n := e.byValue.Find(v); n != nil {
		return *n, true
	}
	return "", false
}

// String returns the name of v or its decimal representation
// if v isn't defined.
func (e *Enum[T]) String(v T) string {
	if n, ok := e.Name(v); ok {
		return n
	}
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// Value returns the value of name.
func (e *Enum[T]) Value(name string) (T, bool) {
	if v := e.byName.Find(name); v != nil {
		return *v, true
	}
	return 0, false
}

// ParseValue returns the value of name or an error wrapping ErrUnknown.
func (e *Enum[T]) ParseValue(name string) (T, error) {
	if v, ok := e.Value(name); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Names returns all names ordered by value.
func (e *Enum[T]) Names() []string {
	names := make([]string, 0, e.Size())
	e.byValue.Visit(func(_ T, name string) (stop bool) {
		names = append(names, name)
		return false
	})
	return names
}

// Values returns all values in ascending order.
func (e *Enum[T]) Values() []T {
	values := make([]T, 0, e.Size())
	e.byValue.Visit(func(v T, _ string) (stop bool) {
		values = append(values, v)
		return false
	})
	return values
}
