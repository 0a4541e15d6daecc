package record

import (
	"github.com/mitchellh/mapstructure"
)

// Decode maps the record's fields onto a Go struct (or map). Field
// order is not meaningful on the target side; nested *Record values
// decode into nested structs.
func (r *Record) Decode(out any) error {
	return mapstructure.Decode(r.plain(), out)
}

func (r *Record) plain() map[string]any {
	m := make(map[string]any, r.Len())
	r.ForEach(func(v any, field string) {
		if nested, ok := v.(*Record); ok {
			m[field] = nested.plain()
			return
		}
		m[field] = v
	})
	return m
}
