// Package gomap wraps Go's native map to serve as a
// benchmark reference for the container.Map implementations.
package gomap

type Map[K comparable, V any] struct {
	m map[K]V
}

func New[K comparable, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		m: make(map[K]V, capacity),
	}
}

// Add inserts or, when update is true, replaces the value of key.
// Returns false if key already existed.
func (m *Map[K, V]) Add(key K, value V, update bool) bool {
	if _, ok := m.m[key]; ok {
		if update {
			m.m[key] = value
		}
		return false
	}
	m.m[key] = value
	return true
}

func (m *Map[K, V]) Remove(key K) bool {
	if _, ok := m.m[key]; !ok {
		return false
	}
	delete(m.m, key)
	return true
}

func (m *Map[K, V]) Find(key K) (v V, ok bool) {
	v, ok = m.m[key]
	return v, ok
}

func (m *Map[K, V]) Reset() {
	clear(m.m)
}

func (m *Map[K, V]) Size() int {
	return len(m.m)
}

// Visit calls fn for every pair in unspecified order.
// Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for k, v := range m.m {
		if fn(k, v) {
			break
		}
	}
}
