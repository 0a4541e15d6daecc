package omap

// Iterator is a restartable cursor over a Map's entries in insertion
// order. It captures the key order when created and again on each
// Rewind; values are read from the live map, and keys deleted since
// the capture are skipped. It is used like this:
//
//	for it := m.Iter(); it.Next(); {
//	    k, v := it.Key(), it.Value()
//	}
type Iterator[K comparable, V any] struct {
	src  *orderedMap[K, V]
	keys []K
	pos  int
}

func newIterator[K comparable, V any](m *orderedMap[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{
		src:  m,
		keys: m.order.Values(),
		pos:  -1,
	}
}

// Next advances to the next live entry, reporting whether one exists.
func (it *Iterator[K, V]) Next() bool {
	for it.pos+1 < len(it.keys) {
		it.pos++
		if it.src.Has(it.keys[it.pos]) {
			return true
		}
	}
	it.pos = len(it.keys)
	return false
}

func (it *Iterator[K, V]) Key() K {
	return it.keys[it.pos]
}

func (it *Iterator[K, V]) Value() V {
	return it.src.values[it.keys[it.pos]]
}

func (it *Iterator[K, V]) Entry() Entry[K, V] {
	return Entry[K, V]{Key: it.Key(), Value: it.Value()}
}

// Rewind resets the cursor and re-captures the key order, so a
// restarted traversal sees the store's current contents.
func (it *Iterator[K, V]) Rewind() {
	it.keys = it.src.order.Values()
	it.pos = -1
}
