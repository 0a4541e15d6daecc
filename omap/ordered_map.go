package omap

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"
)

type orderedMap[K comparable, V any] struct {
	order  *arraylist.List[K]
	values map[K]V
}

func New[K comparable, V any]() Map[K, V] {
	return &orderedMap[K, V]{
		order:  arraylist.New[K](),
		values: make(map[K]V),
	}
}

// FromPairs builds a Map holding the given entries in order. Duplicate
// keys follow Set semantics: the first occurrence fixes the position,
// the last occurrence fixes the value.
func FromPairs[K comparable, V any](entries ...Entry[K, V]) Map[K, V] {
	m := New[K, V]()
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func (m *orderedMap[K, V]) Set(k K, v V) {
	if !m.Has(k) {
		m.order.Add(k)
	}
	m.values[k] = v
}

func (m *orderedMap[K, V]) PutIfAbsent(k K, v V) error {
	if m.Has(k) {
		return ErrKeyExists
	}
	m.order.Add(k)
	m.values[k] = v
	return nil
}

func (m *orderedMap[K, V]) Get(k K) (v V, err error) {
	if !m.Has(k) {
		return v, ErrKeyNotFound
	}
	return m.values[k], nil
}

func (m *orderedMap[K, V]) Has(k K) bool {
	if _, ok := m.values[k]; ok {
		return true
	}
	return false
}

func (m *orderedMap[K, V]) Delete(k K) bool {
	if !m.Has(k) {
		return false
	}
	delete(m.values, k)
	if i := m.order.IndexOf(k); i >= 0 {
		m.order.Remove(i)
	}
	return true
}

func (m *orderedMap[K, V]) Clear() {
	m.order.Clear()
	m.values = make(map[K]V)
}

func (m *orderedMap[K, V]) Size() int {
	return len(m.values)
}

func (m *orderedMap[K, V]) Keys() []K {
	return m.order.Values()
}

func (m *orderedMap[K, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	m.order.Each(func(_ int, k K) {
		arr = append(arr, m.values[k])
	})
	return arr
}

func (m *orderedMap[K, V]) Entries() []Entry[K, V] {
	arr := make([]Entry[K, V], 0, m.Size())
	m.order.Each(func(_ int, k K) {
		arr = append(arr, Entry[K, V]{Key: k, Value: m.values[k]})
	})
	return arr
}

// ForEach visits every entry in insertion order, passing (value, key).
func (m *orderedMap[K, V]) ForEach(visit func(v V, k K)) {
	m.order.Each(func(_ int, k K) {
		visit(m.values[k], k)
	})
}

func (m *orderedMap[K, V]) Iter() *Iterator[K, V] {
	return newIterator(m)
}
