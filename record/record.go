// Package record implements the ordered-record interchange form: a
// string-field to value mapping whose field order is significant.
package record

import (
	"github.com/ndtuan/omap/omap"
)

type Record struct {
	fields omap.Map[string, any]
}

func New() *Record {
	return &Record{
		fields: omap.New[string, any](),
	}
}

func (r *Record) Set(field string, v any) {
	r.fields.Set(field, v)
}

func (r *Record) Get(field string) (any, error) {
	return r.fields.Get(field)
}

func (r *Record) Has(field string) bool {
	return r.fields.Has(field)
}

func (r *Record) Delete(field string) bool {
	return r.fields.Delete(field)
}

func (r *Record) Len() int {
	return r.fields.Size()
}

func (r *Record) Fields() []string {
	return r.fields.Keys()
}

func (r *Record) Values() []any {
	return r.fields.Values()
}

// ForEach visits every field in order, passing (value, field).
func (r *Record) ForEach(visit func(v any, field string)) {
	r.fields.ForEach(visit)
}
