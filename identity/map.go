package identity

import (
	"github.com/google/uuid"

	"github.com/ndtuan/omap/omap"
)

type slot[T any, V any] struct {
	ref   *Ref[T]
	value V
}

// Map is an insertion-ordered store keyed by Ref identity. Only the
// exact Ref instance used to set an entry can find it again.
type Map[T any, V any] struct {
	slots omap.Map[uuid.UUID, slot[T, V]]
}

func NewMap[T any, V any]() *Map[T, V] {
	return &Map[T, V]{
		slots: omap.New[uuid.UUID, slot[T, V]](),
	}
}

func (m *Map[T, V]) Set(ref *Ref[T], v V) {
	m.slots.Set(ref.id, slot[T, V]{ref: ref, value: v})
}

func (m *Map[T, V]) Get(ref *Ref[T]) (v V, err error) {
	s, err := m.slots.Get(ref.id)
	if err != nil {
		return v, err
	}
	return s.value, nil
}

func (m *Map[T, V]) Has(ref *Ref[T]) bool {
	return m.slots.Has(ref.id)
}

func (m *Map[T, V]) Delete(ref *Ref[T]) bool {
	return m.slots.Delete(ref.id)
}

func (m *Map[T, V]) Clear() {
	m.slots.Clear()
}

func (m *Map[T, V]) Size() int {
	return m.slots.Size()
}

func (m *Map[T, V]) Keys() []*Ref[T] {
	arr := make([]*Ref[T], 0, m.slots.Size())
	m.slots.ForEach(func(s slot[T, V], _ uuid.UUID) {
		arr = append(arr, s.ref)
	})
	return arr
}

func (m *Map[T, V]) Values() []V {
	arr := make([]V, 0, m.slots.Size())
	m.slots.ForEach(func(s slot[T, V], _ uuid.UUID) {
		arr = append(arr, s.value)
	})
	return arr
}

// ForEach visits every entry in insertion order, passing (value, ref).
func (m *Map[T, V]) ForEach(visit func(v V, ref *Ref[T])) {
	m.slots.ForEach(func(s slot[T, V], _ uuid.UUID) {
		visit(s.value, s.ref)
	})
}
