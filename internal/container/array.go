package container

import (
	"fmt"
	"log"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
)

// DefaultCapacity is the capacity used by NewDefault.
const DefaultCapacity = 2

var _ containers.Container[string] = (*Array[string])(nil)

// Array is a growable sequence with a capacity that is managed separately
// from its size. Occupied slots always form the prefix [0, Size()); every
// slot after it holds the zero value of T, which doubles as the empty marker.
//
// Append and InsertAt double the capacity when the array is full. DeleteAt
// halves it once fewer than a third of the slots are in use, but never below
// the minimum capacity the array was built with.
type Array[T comparable] struct {
	data  []T
	size  int
	floor int
}

type options struct {
	minCapacity int
}

// Option configures an Array at construction time.
type Option func(*options)

// WithMinCapacity sets the capacity below which DeleteAt never shrinks.
func WithMinCapacity(n int) Option {
	return func(o *options) {
		o.minCapacity = n
	}
}

// New returns an empty array with the given capacity.
func New[T comparable](capacity int, opts ...Option) (*Array[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d must be positive", ErrInvalidCapacity, capacity)
	}

	o := options{minCapacity: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.minCapacity < 1 || o.minCapacity > capacity {
		return nil, fmt.Errorf("%w: minimum %d for capacity %d", ErrInvalidCapacity, o.minCapacity, capacity)
	}

	return &Array[T]{
		data:  make([]T, capacity),
		floor: o.minCapacity,
	}, nil
}

// NewDefault returns an empty array of DefaultCapacity.
func NewDefault[T comparable]() *Array[T] {
	return &Array[T]{
		data:  make([]T, DefaultCapacity),
		floor: 1,
	}
}

// Size reports the number of occupied slots.
func (a *Array[T]) Size() int {
	return a.size
}

// Capacity reports how many slots are allocated.
func (a *Array[T]) Capacity() int {
	return len(a.data)
}

// MinCapacity reports the shrink floor.
func (a *Array[T]) MinCapacity() int {
	return a.floor
}

func (a *Array[T]) Empty() bool {
	return a.size == 0
}

// Clear empties the array without changing its capacity.
func (a *Array[T]) Clear() {
	clear(a.data)
	a.size = 0
}

// Values returns a copy of the occupied prefix.
func (a *Array[T]) Values() []T {
	values := make([]T, a.size)
	copy(values, a.data[:a.size])
	return values
}

// Get returns the value stored at index. Slots past Size() hold the zero value.
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(a.data) {
		var zero T
		return zero, outOfRange(index, 0, len(a.data))
	}
	return a.data[index], nil
}

// Set stores value at index and returns the previous content of the slot.
// The write must keep the occupied prefix intact: it may replace an occupied
// slot, extend the prefix by writing at Size(), or clear the last occupied slot.
// Set never changes the capacity.
func (a *Array[T]) Set(index int, value T) (T, error) {
	var zero T
	if index < 0 || index >= len(a.data) {
		return zero, outOfRange(index, 0, len(a.data))
	}

	switch {
	case value != zero && index < a.size:
	case value != zero && index == a.size:
		a.size++
	case value == zero && index == a.size-1:
		a.size--
	case value == zero && index >= a.size:
	default:
		return zero, fmt.Errorf("%w: set %d with size %d", ErrNonContiguous, index, a.size)
	}

	prev := a.data[index]
	a.data[index] = value
	return prev, nil
}

// Append stores value right after the occupied prefix, doubling the capacity
// first if the array is full. The zero value is ignored.
func (a *Array[T]) Append(value T) {
	var zero T
	if value == zero {
		log.Printf("[ARRAY] Ignoring append of empty value")
		return
	}

	if a.size+1 > len(a.data) {
		a.reallocate(2 * len(a.data))
	}
	a.data[a.size] = value
	a.size++
}

// InsertAt places value at index and shifts the occupied slots from index
// onward one position to the right. index may be anywhere in [0, Capacity()];
// an index at or past Size() appends.
func (a *Array[T]) InsertAt(index int, value T) error {
	if index < 0 || index > len(a.data) {
		return outOfRange(index, 0, len(a.data)+1)
	}

	var zero T
	if value == zero {
		return fmt.Errorf("%w: insert at %d", ErrZeroValue, index)
	}

	if a.size+1 > len(a.data) {
		a.reallocate(2 * len(a.data))
	}

	if index >= a.size {
		a.data[a.size] = value
		a.size++
		return nil
	}

	copy(a.data[index+1:a.size+1], a.data[index:a.size])
	a.data[index] = value
	a.size++
	return nil
}

// DeleteAt removes and returns the value at index, closing the gap by shifting
// the following values left.
func (a *Array[T]) DeleteAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= a.size {
		return zero, outOfRange(index, 0, a.size)
	}

	removed := a.data[index]
	copy(a.data[index:a.size-1], a.data[index+1:a.size])
	a.size--
	a.data[a.size] = zero

	if a.size*3 < len(a.data) && len(a.data) > a.floor {
		a.reallocate(max(len(a.data)/2, a.floor))
	}

	return removed, nil
}

func (a *Array[T]) reallocate(capacity int) {
	data := make([]T, capacity)
	copy(data, a.data[:a.size])
	a.data = data
}

// String dumps the array, one occupied slot per line.
func (a *Array[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Array with %d items and a capacity of %d:", a.size, len(a.data))
	for i := 0; i < a.size; i++ {
		fmt.Fprintf(&sb, "\n  [%d]: %v", i, a.data[i])
	}
	return sb.String()
}
