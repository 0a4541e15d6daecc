package omap

// Entry is a single key/value pair held by a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a key-value store that remembers the order in which keys were
// first inserted. Overwriting an existing key keeps its position;
// deleting and re-adding a key moves it to the end.
//
// A Map is owned by a single caller: concurrent mutation requires
// external synchronization.
type Map[K comparable, V any] interface {
	Set(k K, v V)
	PutIfAbsent(k K, v V) error
	Get(k K) (V, error)
	Has(k K) bool
	Delete(k K) bool
	Clear()
	Size() int
	Keys() []K
	Values() []V
	Entries() []Entry[K, V]
	ForEach(visit func(v V, k K))
	Iter() *Iterator[K, V]
}
