// Package identity provides identity-addressed ordered storage: keys
// are compared by which instance they are, not by what they contain.
// Each Ref is minted with a unique surrogate token, so two refs over
// structurally equal payloads are distinct keys.
package identity

import (
	"github.com/google/uuid"
)

// Ref wraps a value with a unique identity token.
type Ref[T any] struct {
	id    uuid.UUID
	value T
}

func NewRef[T any](v T) *Ref[T] {
	return &Ref[T]{
		id:    uuid.New(),
		value: v,
	}
}

func (r *Ref[T]) ID() uuid.UUID {
	return r.id
}

func (r *Ref[T]) Value() T {
	return r.value
}

// SetValue mutates the payload in place. The identity token is fixed
// at creation and never changes.
func (r *Ref[T]) SetValue(v T) {
	r.value = v
}
