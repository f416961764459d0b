// Package ordmap provides a small insertion-order-preserving map. Plain Go
// maps iterate in randomized order, which would leak into API responses
// that must list users and orders in first-seen order.
package ordmap

// Map preserves the order in which keys were first set. Setting an
// existing key replaces its value without moving it.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in first-set order. The slice is shared; callers
// must not mutate it.
func (m *Map[K, V]) Keys() []K {
	return m.keys
}

// Values returns the values in first-set order of their keys.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}
