package record

import "errors"

var (
	ErrKeyNotCoercible = errors.New("key not coercible to field name")
)
