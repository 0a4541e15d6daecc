package record

import (
	"fmt"
	"strconv"

	"github.com/ndtuan/omap/omap"
)

// FromMap converts an ordered map into a Record, coercing each key to
// a field name. String, integer, float and bool keys coerce; any other
// key type fails with ErrKeyNotCoercible. Distinct keys that coerce to
// the same field name collapse under the usual set semantics: first
// occurrence fixes the position, last fixes the value.
func FromMap[K comparable, V any](m omap.Map[K, V]) (*Record, error) {
	r := New()
	for _, e := range m.Entries() {
		field, err := coerceKey(e.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", err, e.Key)
		}
		r.Set(field, e.Value)
	}
	return r, nil
}

// ToMap converts a Record back into an ordered map, preserving field
// order.
func ToMap(r *Record) omap.Map[string, any] {
	m := omap.New[string, any]()
	r.ForEach(func(v any, field string) {
		m.Set(field, v)
	})
	return m
}

func coerceKey(k any) (string, error) {
	switch v := k.(type) {
	case string:
		return v, nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", ErrKeyNotCoercible
	}
}
