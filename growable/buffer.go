package growable

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"scalar-collections/scalar"
)

// Buffer is a growable sequence of scalar values backed by one slice.
//
// The length of the backing slice is the capacity; elements past Len are
// never observable. The zero value is an empty buffer with the default policy.
type Buffer[T scalar.Value] struct {
	data   []T
	size   int
	policy Policy
}

var _ Resizable = (*Buffer[int32])(nil)

// New creates an empty buffer with the given initial capacity.
func New[T scalar.Value](capacity int) (*Buffer[T], error) {
	return NewWithPolicy[T](capacity, DefaultPolicy(elemSize[T]()))
}

// NewDefault creates an empty buffer with the default initial capacity.
func NewDefault[T scalar.Value]() *Buffer[T] {
	p := DefaultPolicy(elemSize[T]())

	return &Buffer[T]{data: make([]T, p.DefaultCapacity), policy: p}
}

// NewWithPolicy creates an empty buffer that grows and shrinks by p.
func NewWithPolicy[T scalar.Value](capacity int, p Policy) (*Buffer[T], error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidCapacity, capacity)
	}

	if capacity > p.MaxCapacity {
		return nil, fmt.Errorf("%w: initial capacity %d, max capacity is %d", ErrCapacityExceeded, capacity, p.MaxCapacity)
	}

	return &Buffer[T]{data: make([]T, capacity), policy: p}, nil
}

// From creates a buffer holding a copy of values.
func From[T scalar.Value](values []T) *Buffer[T] {
	return &Buffer[T]{
		data:   slices.Clone(values),
		size:   len(values),
		policy: DefaultPolicy(elemSize[T]()),
	}
}

func elemSize[T scalar.Value]() int {
	var zero T

	return int(unsafe.Sizeof(zero))
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the number of elements the buffer holds without reallocating.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// IsEmpty reports whether the buffer has no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.size == 0
}

// Policy returns the capacity policy of the buffer.
func (b *Buffer[T]) Policy() Policy {
	if b.policy == (Policy{}) {
		b.policy = DefaultPolicy(elemSize[T]())
	}

	return b.policy
}

// Resize reallocates the storage to capacity elements.
// The capacity is clamped to [Len, Policy().MaxCapacity].
func (b *Buffer[T]) Resize(capacity int) {
	capacity = max(capacity, b.size)
	capacity = min(capacity, b.Policy().MaxCapacity)
	if capacity == len(b.data) {
		return
	}

	data := make([]T, capacity)
	copy(data, b.data[:b.size])
	b.data = data
}

// Reserve grows the storage so that at least capacity elements fit.
func (b *Buffer[T]) Reserve(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidCapacity, capacity)
	}

	return Grow(b, capacity, b.Policy())
}

// Append adds v after the last element.
func (b *Buffer[T]) Append(v T) error {
	if err := b.grow(1); err != nil {
		return err
	}

	b.data[b.size] = v
	b.size++

	return nil
}

// AppendAll adds values after the last element with at most one reallocation.
func (b *Buffer[T]) AppendAll(values ...T) error {
	if err := b.grow(len(values)); err != nil {
		return err
	}

	copy(b.data[b.size:], values)
	b.size += len(values)

	return nil
}

// Insert places v at index, shifting the elements from index on up by one.
// Inserting at Len appends.
func (b *Buffer[T]) Insert(index int, v T) error {
	if err := b.checkPosition(index); err != nil {
		return err
	}

	if err := b.grow(1); err != nil {
		return err
	}

	copy(b.data[index+1:b.size+1], b.data[index:b.size])
	b.data[index] = v
	b.size++

	return nil
}

// InsertAll places values at index, shifting the tail once.
func (b *Buffer[T]) InsertAll(index int, values ...T) error {
	if err := b.checkPosition(index); err != nil {
		return err
	}

	n := len(values)
	if n == 0 {
		return nil
	}

	if err := b.grow(n); err != nil {
		return err
	}

	copy(b.data[index+n:b.size+n], b.data[index:b.size])
	copy(b.data[index:], values)
	b.size += n

	return nil
}

// Get returns the element at index.
func (b *Buffer[T]) Get(index int) (T, error) {
	if err := b.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}

	return b.data[index], nil
}

// Set replaces the element at index.
func (b *Buffer[T]) Set(index int, v T) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}

	b.data[index] = v

	return nil
}

// Range returns a copy of the elements in [from, to).
// An empty range is rejected.
func (b *Buffer[T]) Range(from, to int) ([]T, error) {
	if from < 0 || from > b.size || to < 0 || to > b.size {
		return nil, fmt.Errorf("%w: range [%d, %d) with size %d", ErrIndexOutOfRange, from, to, b.size)
	}

	if from >= to {
		return nil, fmt.Errorf("%w: from %d must be less than to %d", ErrInvalidRange, from, to)
	}

	return slices.Clone(b.data[from:to]), nil
}

// Remove deletes the element at index and returns it.
// Elements after index move down by one; the storage may shrink afterwards.
func (b *Buffer[T]) Remove(index int) (T, error) {
	if err := b.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}

	v := b.data[index]
	copy(b.data[index:b.size-1], b.data[index+1:b.size])
	b.size--

	var zero T
	b.data[b.size] = zero

	Shrink(b, b.Policy())

	return v, nil
}

// Clear removes all elements and keeps the capacity.
func (b *Buffer[T]) Clear() {
	clear(b.data[:b.size])
	b.size = 0
}

// Contains reports whether v is one of the elements.
func (b *Buffer[T]) Contains(v T) bool {
	return b.IndexOf(v) >= 0
}

// IndexOf returns the index of the first element equal to v, or -1.
func (b *Buffer[T]) IndexOf(v T) int {
	return slices.Index(b.data[:b.size], v)
}

// ForEach calls visit for every element in index order.
// The first error returned by visit stops the iteration and is returned.
func (b *Buffer[T]) ForEach(visit func(T) error) error {
	return b.ForEachIndexed(func(_ int, v T) error {
		return visit(v)
	})
}

// ForEachIndexed is ForEach with the element index.
func (b *Buffer[T]) ForEachIndexed(visit func(int, T) error) error {
	for i := 0; i < b.size; i++ {
		if err := visit(i, b.data[i]); err != nil {
			return err
		}
	}

	return nil
}

// All returns an iterator over index and element pairs.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.data[i]) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements; its length equals Len.
// The result is never nil.
func (b *Buffer[T]) ToSlice() []T {
	res := make([]T, b.size)
	copy(res, b.data[:b.size])

	return res
}

// Equal reports whether both buffers hold the same elements in the same order.
// A nil other is never equal.
func (b *Buffer[T]) Equal(other *Buffer[T]) bool {
	if other == nil {
		return false
	}

	return slices.Equal(b.data[:b.size], other.data[:other.size])
}

func (b *Buffer[T]) String() string {
	return fmt.Sprint(b.data[:b.size])
}

// grow makes room for n more elements.
func (b *Buffer[T]) grow(n int) error {
	p := b.Policy()
	if n > p.MaxCapacity-b.size {
		return fmt.Errorf("%w: %d elements over size %d, max capacity is %d", ErrCapacityExceeded, n, b.size, p.MaxCapacity)
	}

	return Grow(b, b.size+n, p)
}

func (b *Buffer[T]) checkIndex(index int) error {
	if index < 0 || index >= b.size {
		return fmt.Errorf("%w: index %d with size %d", ErrIndexOutOfRange, index, b.size)
	}

	return nil
}

// checkPosition accepts Len as the insertion point after the last element.
func (b *Buffer[T]) checkPosition(index int) error {
	if index < 0 || index > b.size {
		return fmt.Errorf("%w: position %d with size %d", ErrIndexOutOfRange, index, b.size)
	}

	return nil
}
