package record

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndtuan/omap/omap"
)

func TestRecord(t *testing.T) {
	r := New()
	r.Set("aa", 1)
	r.Set("bb", "two")
	r.Set("aa", 3)
	require.Equal(t, 2, r.Len())
	require.Equal(t, []string{"aa", "bb"}, r.Fields())
	require.Equal(t, []any{3, "two"}, r.Values())
	v, err := r.Get("bb")
	require.Nil(t, err)
	require.Equal(t, "two", v)
	_, err = r.Get("cc")
	require.ErrorIs(t, err, omap.ErrKeyNotFound)
	require.Equal(t, true, r.Delete("aa"))
	require.Equal(t, false, r.Delete("aa"))
	require.Equal(t, 1, r.Len())
}

func TestFromMapCoercesKeys(t *testing.T) {
	m := omap.New[int, string]()
	m.Set(3, "three")
	m.Set(1, "one")
	m.Set(2, "two")
	r, err := FromMap(m)
	require.Nil(t, err)
	require.Equal(t, []string{"3", "1", "2"}, r.Fields())
	require.Equal(t, []any{"three", "one", "two"}, r.Values())
}

func TestFromMapBoolAndFloatKeys(t *testing.T) {
	mb := omap.New[bool, int]()
	mb.Set(true, 1)
	mb.Set(false, 0)
	rb, err := FromMap(mb)
	require.Nil(t, err)
	require.Equal(t, []string{"true", "false"}, rb.Fields())

	mf := omap.New[float64, int]()
	mf.Set(1.5, 1)
	rf, err := FromMap(mf)
	require.Nil(t, err)
	require.Equal(t, []string{"1.5"}, rf.Fields())
}

func TestFromMapRejectsNonCoercibleKeys(t *testing.T) {
	type Mock struct {
		A string
	}
	m := omap.New[Mock, int]()
	m.Set(Mock{A: "aa"}, 1)
	_, err := FromMap(m)
	require.ErrorIs(t, err, ErrKeyNotCoercible)
}

func TestRoundTrip(t *testing.T) {
	m := omap.New[string, any]()
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)
	r, err := FromMap(m)
	require.Nil(t, err)
	back := ToMap(r)
	require.Equal(t, m.Keys(), back.Keys())
	require.Equal(t, m.Values(), back.Values())
}

func TestDecode(t *testing.T) {
	type Address struct {
		City string
		Zip  string
	}
	type Person struct {
		Name    string
		Age     int
		Address Address
	}
	addr := New()
	addr.Set("City", "Hanoi")
	addr.Set("Zip", "100000")
	r := New()
	r.Set("Name", "An")
	r.Set("Age", 30)
	r.Set("Address", addr)
	var p Person
	require.Nil(t, r.Decode(&p))
	require.Equal(t, Person{
		Name: "An",
		Age:  30,
		Address: Address{
			City: "Hanoi",
			Zip:  "100000",
		},
	}, p)
}
