package omap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	entries := make([]Entry[string, int], 0)
	for it := m.Iter(); it.Next(); {
		entries = append(entries, it.Entry())
	}
	require.Equal(t, []Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	}, entries)
}

func TestIteratorSkipsDeletedKeys(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	it := m.Iter()
	require.Equal(t, true, it.Next())
	require.Equal(t, "a", it.Key())
	m.Delete("b")
	require.Equal(t, true, it.Next())
	require.Equal(t, "c", it.Key())
	require.Equal(t, false, it.Next())
}

func TestIteratorReadsValuesLive(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	it := m.Iter()
	m.Set("a", 9)
	require.Equal(t, true, it.Next())
	require.Equal(t, 9, it.Value())
}

func TestIteratorRewind(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	it := m.Iter()
	require.Equal(t, true, it.Next())
	require.Equal(t, false, it.Next())
	m.Set("b", 2)
	it.Rewind()
	keys := make([]string, 0)
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []string{"a", "b"}, keys)
}
