package domain

// Optional is a field in a partial update. The zero value means "leave
// unchanged"; Some(v) means "set to v".
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// FromPtr returns Some(*p), or an unset Optional when p is nil. Request DTOs
// use nil pointers for absent JSON fields.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

// Get returns the held value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the field should be applied.
func (o Optional[T]) IsSet() bool {
	return o.set
}
