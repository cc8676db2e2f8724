package container

import "github.com/emirpasic/gods/v2/containers"

var _ containers.IteratorWithIndex[string] = (*Iterator[string])(nil)

// Iterator walks the occupied prefix of an Array in index order.
type Iterator[T comparable] struct {
	array *Array[T]
	index int
}

// Iterator returns a stateful iterator positioned before the first element.
func (a *Array[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{array: a, index: -1}
}

// Next moves to the next element and reports whether one exists.
func (it *Iterator[T]) Next() bool {
	if it.index < it.array.size {
		it.index++
	}
	return it.index < it.array.size
}

func (it *Iterator[T]) Value() T {
	return it.array.data[it.index]
}

func (it *Iterator[T]) Index() int {
	return it.index
}

// Begin resets the iterator to its initial state.
func (it *Iterator[T]) Begin() {
	it.index = -1
}

// First moves to the first element and reports whether one exists.
func (it *Iterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

// NextTo moves to the next element satisfying f.
func (it *Iterator[T]) NextTo(f func(index int, value T) bool) bool {
	for it.Next() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}
