package vector

import "iter"

// An Iterator is a forward cursor over the elements of a vector, yielding
// them in insertion order. The vector must not be mutated while the iterator
// is in use.
type Iterator[T any] struct {
	vec *Vector[T]
	pos int
}

// Iter returns a new Iterator positioned on the first element of the vector.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{vec: v}
}

// Next returns the element at the current position and advances the
// iterator. The second return value is false once the iterator is exhausted,
// and stays false on subsequent calls.
func (it *Iterator[T]) Next() (T, bool) {
	x, ok := it.vec.Get(it.pos)
	if !ok {
		return x, false
	}
	it.pos++
	return x, true
}

// Values returns an iterator over the elements of the vector in insertion
// order. The vector must not be mutated while iterating.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// All returns an iterator over index-element pairs of the vector in
// insertion order. The vector must not be mutated while iterating.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
