package vector

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors wrapped by the panics raised on contract violations and by
// the errors returned when decoding untrusted input.
var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrOutOfBounds      = errors.New("out of bounds")
)

// A Vector represents a bounded contiguous container of elements kept in
// insertion order. The zero value is an empty vector of capacity 0.
type Vector[T any] struct {
	data   []T
	length int
}

// New creates and initializes a new empty Vector using capacity as the
// maximum number of elements it can hold. It panics if capacity is negative.
func New[T any](capacity int) *Vector[T] {
	return &Vector[T]{data: make([]T, capacity)}
}

// NewFromValues creates a new Vector using capacity as its capacity and
// values, in order, as its initial content. It panics with an error wrapping
// ErrCapacityExceeded if values holds more elements than capacity.
func NewFromValues[T any](capacity int, values []T) *Vector[T] {
	if len(values) > capacity {
		panic(fmt.Errorf("vector: sequence of %d elements exceeds capacity %d: %w", len(values), capacity, ErrCapacityExceeded))
	}
	v := New[T](capacity)
	copy(v.data, values)
	v.length = len(values)
	return v
}

// NewFromSeq creates a new Vector using capacity as its capacity and the
// elements produced by seq, in order, as its initial content. It panics with
// an error wrapping ErrCapacityExceeded at the moment seq produces more
// elements than capacity.
func NewFromSeq[T any](capacity int, seq iter.Seq[T]) *Vector[T] {
	v := New[T](capacity)
	for x := range seq {
		v.Push(x)
	}
	return v
}

// Len returns the number of elements currently held by the vector.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the maximum number of elements the vector can hold.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Free returns the number of elements that can be pushed onto the vector
// before it is full.
func (v *Vector[T]) Free() int {
	return len(v.data) - v.length
}

// IsEmpty reports whether the vector holds no element.
func (v *Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// IsFull reports whether the vector has no free slot left.
func (v *Vector[T]) IsFull() bool {
	return v.length == len(v.data)
}

// LastIndex returns the index of the last element of the vector. The second
// return value is false if the vector is empty.
func (v *Vector[T]) LastIndex() (int, bool) {
	if v.length == 0 {
		return 0, false
	}
	return v.length - 1, true
}

// Get returns the element at index i. The second return value is false if i
// is outside the occupied range.
func (v *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, false
	}
	return v.data[i], true
}

// At returns the element at index i, panicking with an error wrapping
// ErrOutOfBounds if i is outside the occupied range. It is meant for
// positions the caller knows to be valid; use Get when the position is not
// under the caller's control.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.length {
		panic(fmt.Errorf("vector: index %d out of bounds with length %d and capacity %d: %w", i, v.length, len(v.data), ErrOutOfBounds))
	}
	return v.data[i]
}

// Last returns the last element of the vector. The second return value is
// false if the vector is empty.
func (v *Vector[T]) Last() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	return v.data[v.length-1], true
}

// LastPtr returns a pointer to the last element of the vector, allowing
// in-place modification, or nil if the vector is empty. The pointer is
// invalidated by the next call to Pop.
func (v *Vector[T]) LastPtr() *T {
	if v.length == 0 {
		return nil
	}
	return &v.data[v.length-1]
}

// Push appends x to the vector. It panics with an error wrapping
// ErrCapacityExceeded if the vector is full.
func (v *Vector[T]) Push(x T) {
	if v.length == len(v.data) {
		panic(fmt.Errorf("vector: push on full vector with capacity %d: %w", len(v.data), ErrCapacityExceeded))
	}
	v.data[v.length] = x
	v.length++
}

// Pop removes and returns the last element of the vector. The second return
// value is false if the vector is empty. The vacated slot is reset to the
// zero value so that it retains no reference to the element.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	v.length--
	x := v.data[v.length]
	v.data[v.length] = zero
	return x, true
}

// Clone returns a copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	clone := Vector[T]{
		data:   make([]T, len(v.data)),
		length: v.length,
	}
	copy(clone.data, v.data)
	return &clone
}

// String returns a rendering of the elements held by the vector, in order.
// Free slots are not included.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.data[:v.length])
}

// Equal reports whether x and y have the same capacity and hold equal
// elements in the same order.
func Equal[T comparable](x, y *Vector[T]) bool {
	if len(x.data) != len(y.data) || x.length != y.length {
		return false
	}
	for i := 0; i < x.length; i++ {
		if x.data[i] != y.data[i] {
			return false
		}
	}
	return true
}

// EqualFunc reports whether x and y have the same capacity and hold pairwise
// equal elements in the same order, using eq as the element equality
// function.
func EqualFunc[T, U any](x *Vector[T], y *Vector[U], eq func(T, U) bool) bool {
	if len(x.data) != len(y.data) || x.length != y.length {
		return false
	}
	for i := 0; i < x.length; i++ {
		if !eq(x.data[i], y.data[i]) {
			return false
		}
	}
	return true
}
