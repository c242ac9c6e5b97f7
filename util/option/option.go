// Package option provides a two-variant result: a present value or nothing.
// Decoders that sit on untrusted input return it instead of an error.
package option

import "fmt"

// Option holds either a value (Some) or nothing (None). The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present option holding v
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent option
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromResult converts the (value, error) pair to an option, dropping the error
func FromResult[T any](v T, err error) Option[T] {
	if err != nil {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the value is present
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the value is absent
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// MustGet returns the value or panics when absent
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic(fmt.Errorf("option: value of type %T is absent", o.value))
	}
	return o.value
}

// OrElse returns the value when present, otherwise def
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Match calls some with the value when present, otherwise none
func (o Option[T]) Match(some func(T), none func()) {
	if o.ok {
		some(o.value)
		return
	}
	none()
}

// Map applies fn to a present value
func Map[T, R any](o Option[T], fn func(T) R) Option[R] {
	if !o.ok {
		return None[R]()
	}
	return Some(fn(o.value))
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
