package combo

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var (
	// ErrExhausted is returned by Next after the last arrangement.
	ErrExhausted = errors.New("combinations exhausted")
	// ErrArity reports an arity that is negative or too large to enumerate.
	ErrArity = errors.New("invalid arity")
)

// Combinations lazily produces the k-tuples over values.
// It is forward-only: once drained it stays drained.
type Combinations[T any] struct {
	values []T
	k      int
	total  int
	next   int
}

// Power returns the arrangements of length k over values.
// For k == 0 there is exactly one arrangement, the empty tuple.
func Power[T any](values []T, k int) (*Combinations[T], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrArity, k)
	}

	total, ok := pow(len(values), k)
	if !ok {
		return nil, fmt.Errorf("%w: %d^%d arrangements overflow", ErrArity, len(values), k)
	}

	return &Combinations[T]{
		values: values,
		k:      k,
		total:  total,
	}, nil
}

// Len returns the total number of arrangements, n^k.
func (c *Combinations[T]) Len() int {
	return c.total
}

// Arity returns k.
func (c *Combinations[T]) Arity() int {
	return c.k
}

// HasNext reports whether Next will produce another arrangement.
func (c *Combinations[T]) HasNext() bool {
	return c.next < c.total
}

// Next returns the next arrangement as a new slice.
func (c *Combinations[T]) Next() ([]T, error) {
	if !c.HasNext() {
		return nil, fmt.Errorf("%w: all %d arrangements were produced", ErrExhausted, c.total)
	}

	res := c.at(c.next)
	c.next++

	return res, nil
}

// All returns an iterator over the remaining arrangements.
// Iterating consumes them.
func (c *Combinations[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for c.HasNext() {
			res := c.at(c.next)
			c.next++

			if !yield(res) {
				return
			}
		}
	}
}

// at decodes arrangement index into a tuple.
func (c *Combinations[T]) at(index int) []T {
	n := len(c.values)
	res := make([]T, c.k)

	for i := c.k - 1; i >= 0; i-- {
		res[i] = c.values[index%n]
		index /= n
	}

	return res
}

// pow returns n^k and false when it does not fit in an int.
func pow(n, k int) (int, bool) {
	res := 1
	for range k {
		if n != 0 && res > math.MaxInt/n {
			return 0, false
		}

		res *= n
	}

	return res, true
}
