package hamap_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/evolib/evo/pkg/compare"
	"github.com/evolib/evo/pkg/container"
	"github.com/evolib/evo/pkg/container/hamap"
	"github.com/evolib/evo/pkg/dataop"
	"github.com/evolib/evo/pkg/testeq"
	"github.com/stretchr/testify/require"
)

func TestClear(t *testing.T) {
	m := hamap.NewWith[string, bool](&MockHasher[string]{
		Map: map[string]uint64{"0": 0, "1": 1, "2": 2, "3": 3, "4": 4},
	}, 0)
	require.True(t, m.Null())

	numKeys := 5
	for i := 0; i < numKeys; i++ {
		m.Add(strconv.Itoa(i), true, true)
	}
	require.Equal(t, numKeys, m.Size())

	m.Clear()

	require.Zero(t, m.Size())
	require.False(t, m.Null())
	for i := 0; i < numKeys; i++ {
		require.Nil(t, m.Find(strconv.Itoa(i)))
	}

	m.Set()
	require.True(t, m.Null())
	require.True(t, m.Empty())
	m.SetEmpty()
	require.False(t, m.Null())
	require.False(t, m.Ordered())
}

func TestDefaultHasher(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		m := hamap.New[[]byte, int]()
		m.Add([]byte("key"), 1, true)
		require.Equal(t, 1, *m.Find([]byte("key")))
	})
	t.Run("string", func(t *testing.T) {
		m := hamap.New[string, int]()
		m.Add("key", 1, true)
		require.Equal(t, 1, *m.Find("key"))
	})
	t.Run("int", func(t *testing.T) {
		m := hamap.New[int, int]()
		m.Add(42, 1, true)
		require.Equal(t, 1, *m.Find(42))
	})
}

func TestSeed(t *testing.T) {
	a := hamap.NewWith[string, int](compare.CompareHash[string]{}, 1)
	b := hamap.NewWith[string, int](compare.CompareHash[string]{}, 2)
	for i := 0; i < 64; i++ {
		a.Add(strconv.Itoa(i), i, true)
		b.Add(strconv.Itoa(i), i, true)
	}
	require.True(t, a.Equal(b))
	require.NotEqual(t, a.Values(), b.Values())
}

func TestAdd(t *testing.T) {
	m := hamap.NewWith[[]byte, int](&MockHasher[[]byte]{
		Map: map[string]uint64{"x": 0, "a": 1, "b": 2, "c": 3},
	}, 0)
	m.Add([]byte("a"), -1, true)
	m.Add([]byte("b"), 0, true)
	m.Add([]byte("c"), 1, true)
	Expect(t, m,
		[][]byte{[]byte("a"), []byte("b"), []byte("c")},
		[]int{-1, 0, 1},
	)

	m.Add([]byte("a"), 2, true)
	m.Add([]byte("b"), 3, true)
	m.Add([]byte("c"), 4, false)
	Expect(t, m,
		[][]byte{[]byte("a"), []byte("b"), []byte("c")},
		[]int{2, 3, 1},
	)

	m.Add([]byte("x"), 42, true)
	Expect(t, m,
		[][]byte{[]byte("x"), []byte("a"), []byte("b"), []byte("c")},
		[]int{42, 2, 3, 1},
	)
}

func TestAddCollision(t *testing.T) {
	m := hamap.NewWith[[]byte, int](&MockHasher[[]byte]{
		Map: map[string]uint64{"x": 0, "a": 1, "b": 2, "c": 2, "d": 2},
	}, 0)
	m.Add([]byte("a"), -1, true)
	m.Add([]byte("b"), 0, true)
	m.Add([]byte("c"), 1, true)
	Expect(t, m,
		[][]byte{[]byte("a"), []byte("b"), []byte("c")},
		[]int{-1, 0, 1},
	)

	m.Add([]byte("a"), 2, true)
	m.Add([]byte("b"), 3, true)
	m.Add([]byte("c"), 4, true)
	m.Add([]byte("d"), 11, true)
	Expect(t, m,
		[][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")},
		[]int{2, 3, 4, 11},
	)

	m.Add([]byte("x"), 42, true)
	Expect(t, m,
		[][]byte{
			[]byte("x"),
			[]byte("a"),
			[]byte("b"),
			[]byte("c"),
			[]byte("d"),
		},
		[]int{42, 2, 3, 4, 11},
	)
}

func TestGet(t *testing.T) {
	m := hamap.NewWith[string, float32](&MockHasher[string]{
		Map: map[string]uint64{"a": 0, "b": 1, "c": 1},
	}, 0)
	m.Add("a", 2, true)

	v, created := m.Get("b")
	require.True(t, created)
	require.Zero(t, *v)
	*v = 42.5

	v, created = m.Get("b")
	require.False(t, created)
	require.Equal(t, float32(42.5), *v)

	v, created = m.Get("c")
	require.True(t, created)
	*v = 1

	require.Equal(t, float32(42.5), *m.Find("b"))
	require.Equal(t, float32(1), *m.Find("c"))
	require.Equal(t, 3, m.Size())
}

func TestFindCollision(t *testing.T) {
	m := hamap.NewWith[[]byte, int](&MockHasher[[]byte]{
		Map: map[string]uint64{"x": 0, "a": 1, "b": 2, "c": 2, "d": 2},
	}, 0)
	m.Add([]byte("a"), 2, true)
	m.Add([]byte("b"), 3, true)
	m.Add([]byte("c"), 4, true)

	require.Equal(t, 2, *m.Find([]byte("a")))
	require.Equal(t, 3, *m.Find([]byte("b")))
	require.Equal(t, 4, *m.Find([]byte("c")))
	require.Nil(t, m.Find([]byte("d")))
	require.Nil(t, m.Find([]byte("x")))

	*m.FindM([]byte("c")) = 5
	require.Equal(t, 5, *m.Find([]byte("c")))
}

func TestRemove(t *testing.T) {
	m := hamap.NewWith[[]byte, int](&MockHasher[[]byte]{
		Map: map[string]uint64{"a": 0, "b": 1, "c": 2, "d": 3},
	}, 0)
	m.Add([]byte("a"), 1, true)
	m.Add([]byte("b"), 2, true)
	m.Add([]byte("c"), 3, true)

	require.True(t, m.Remove([]byte("a")))
	Expect(t, m,
		[][]byte{[]byte("b"), []byte("c")},
		[]int{2, 3},
	)

	require.True(t, m.Remove([]byte("b")))
	require.True(t, m.Remove([]byte("c")))
	Expect(t, m, [][]byte(nil), []int(nil))

	require.False(t, m.Remove([]byte("d")))
	Expect(t, m, [][]byte(nil), []int(nil))
}

func TestRemoveCollision(t *testing.T) {
	m := hamap.NewWith[[]byte, int](&MockHasher[[]byte]{
		Map: map[string]uint64{
			"a": 0, "b": 1, "c": 1, "d": 3,
			"col3_1": 5, "col3_2": 5, "col3_3": 5, "col3_4": 5,
		},
	}, 0)
	m.Add([]byte("a"), 1, true)
	m.Add([]byte("b"), 2, true)
	m.Add([]byte("c"), 3, true)
	m.Add([]byte("col3_1"), 6, true)
	m.Add([]byte("col3_2"), 7, true)
	m.Add([]byte("col3_3"), 8, true)
	require.Equal(t, 6, m.Size())

	require.True(t, m.Remove([]byte("b")))
	Expect(t, m,
		[][]byte{
			[]byte("a"), []byte("c"),
			[]byte("col3_1"), []byte("col3_2"), []byte("col3_3"),
		},
		[]int{1, 3, 6, 7, 8},
	)

	require.True(t, m.Remove([]byte("col3_2")))
	Expect(t, m,
		[][]byte{
			[]byte("a"), []byte("c"),
			[]byte("col3_1"), []byte("col3_3"),
		},
		[]int{1, 3, 6, 8},
	)

	require.False(t, m.Remove([]byte("col3_4")))
	require.False(t, m.Remove([]byte("d")))
	require.Equal(t, 4, m.Size())
}

func TestRemoveAt(t *testing.T) {
	hasher := &MockHasher[string]{
		Map: map[string]uint64{"a": 0, "b": 1, "c": 1, "d": 2},
	}
	for _, td := range []struct {
		remove    string
		dir       container.Direction
		expectEnd bool
		expectKey string
	}{
		{"a", container.Forward, false, "b"},
		{"b", container.Forward, false, "c"},
		{"c", container.Forward, false, "d"},
		{"d", container.Forward, true, ""},
		{"a", container.Reverse, true, ""},
		{"b", container.Reverse, false, "a"},
		{"c", container.Reverse, false, "b"},
		{"d", container.Reverse, false, "c"},
		{"b", container.None, true, ""},
	} {
		t.Run(fmt.Sprintf("%s_%s", td.remove, td.dir), func(t *testing.T) {
			m := hamap.NewWith[string, int](hasher, 0)
			for _, k := range []string{"a", "b", "c", "d"} {
				m.Add(k, 0, true)
			}
			it := m.Iter()
			require.True(t, it.At(td.remove))
			require.True(t, it.Remove(td.dir))
			require.Equal(t, td.expectEnd, it.End())
			require.Equal(t, td.expectKey, it.Key())
			require.Nil(t, m.Find(td.remove))
			require.Equal(t, 3, m.Size())
		})
	}
}

func TestIterate(t *testing.T) {
	m := hamap.NewWith[string, int](&MockHasher[string]{
		Map: map[string]uint64{"a": 0, "b": 1, "c": 1, "d": 2},
	}, 0)
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Add(k, i, true)
	}

	it := m.Iter()
	var forward, backward []string
	for ok := it.First(); ok; ok = it.Next() {
		forward = append(forward, it.Key())
	}
	for ok := it.Last(); ok; ok = it.Prev() {
		backward = append(backward, it.Key())
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, forward)
	require.Equal(t, []string{"d", "c", "b", "a"}, backward)

	e := hamap.New[string, int]().Iter()
	require.False(t, e.First())
	require.False(t, e.Last())
}

func TestShare(t *testing.T) {
	a := hamap.New[string, []byte]()
	a.Add("k", []byte("value"), true)
	b := hamap.New[string, []byte]()
	b.SetFrom(a)
	require.True(t, a.Shared())
	require.Equal(t, 1, b.Size())

	(*b.FindM("k"))[0] = 'V'
	require.False(t, a.Shared())
	require.Equal(t, "value", string(*a.Find("k")))
	require.Equal(t, "Value", string(*b.Find("k")))

	// A different seed forces a copy.
	c := hamap.NewWith[string, []byte](compare.CompareHash[string]{}, 7)
	c.SetFrom(a)
	require.False(t, a.Shared())
	require.True(t, c.Equal(a))
}

func TestSize(t *testing.T) {
	keys := make([]string, 5)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	m := hamap.NewWith[string, bool](&MockHasher[string]{
		Map: map[string]uint64{"0": 0, "1": 1, "2": 2, "3": 3, "4": 4},
	}, 0)
	for i, el := range keys {
		m.Add(el, true, true)
		require.Equal(t, i+1, m.Size())
	}
	require.Equal(t, len(keys), m.Size())
}

func TestVisitStop(t *testing.T) {
	m := hamap.NewWith[string, string](&MockHasher[string]{
		Map: map[string]uint64{"a": 0, "b": 1, "c": 2, "d": 2},
	}, 0)
	m.Add("a", "val1", true)
	m.Add("b", "val2", true)
	m.Add("c", "val3", true)
	m.Add("d", "val4", true)
	calls := 0
	m.Visit(func(k string, v string) (stop bool) {
		require.Equal(t, "a", k)
		require.Equal(t, "val1", v)
		calls++
		return true
	})
	require.Equal(t, 1, calls)
	calls = 0
	m.Visit(func(k string, v string) (stop bool) {
		calls++
		return calls == 4
	})
	require.Equal(t, 4, calls)
}

func TestGet512(t *testing.T) {
	m := hamap.New[string, int]()
	for i := 0; i < 512; i++ {
		m.Add(strconv.Itoa(i), i, true)
	}
	for i := 0; i < 512; i++ {
		v := m.Find(strconv.Itoa(i))
		require.NotNil(t, v)
		require.Equal(t, i, *v)
	}
}

func Expect[K ~string | ~[]byte, V any, H compare.CompareHasher[K]](
	t *testing.T,
	a *hamap.Map[K, V, H],
	keys []K,
	values []V,
) {
	t.Helper()
	var actualKeys []K
	var actualValues []V
	require.Equal(t, len(keys), a.Size())
	a.VisitAll(func(key K, value V) {
		actualKeys = append(actualKeys, key)
		actualValues = append(actualValues, value)
	})
	require.True(t, testeq.Slices(t, "key", keys, actualKeys,
		testeq.Diff[K], testeq.Sprint[K]))
	require.True(t, testeq.Slices(t, "value", values, actualValues,
		testeq.Diff[V], testeq.Sprint[V]))
}

// MockHasher hashes keys to predefined values.
type MockHasher[K ~string | ~[]byte] struct {
	Map map[string]uint64
}

func (m *MockHasher[K]) Compare(a, b K) int {
	return dataop.For[K]().Compare(a, b)
}

func (m *MockHasher[K]) Hash(k K, seed uint64) uint64 {
	if hashValue, ok := m.Map[string(k)]; ok {
		return hashValue
	}
	panic(fmt.Errorf("missing hash value for key %q", string(k)))
}
