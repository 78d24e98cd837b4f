package growable

import (
	"fmt"
	"math"
	"math/bits"
)

// Default policy values.
const (
	DefaultCapacity        = 12
	DefaultGrowthFactor    = 1.5
	DefaultShrinkThreshold = 32
	DefaultShrinkDivisor   = 2.0

	// safetyMargin is kept free below the largest allocatable length.
	safetyMargin = 8
)

// maxAllocBytes is the largest single allocation the runtime accepts.
const maxAllocBytes = 1<<(min(bits.UintSize, 49)-1) - 1

// Policy holds the tuning values of the capacity algorithm.
// The growth and shrink values are heuristics, not invariants.
type Policy struct {
	// DefaultCapacity is used when no initial capacity is given.
	DefaultCapacity int
	// GrowthFactor multiplies the required size on growth.
	GrowthFactor float64
	// ShrinkThreshold is the smallest capacity that is ever shrunk.
	ShrinkThreshold int
	// ShrinkDivisor divides the capacity to get the shrink candidate.
	ShrinkDivisor float64
	// MaxCapacity is the upper bound of the capacity, in elements.
	MaxCapacity int
}

// DefaultPolicy returns the default policy for elements of elemSize bytes.
func DefaultPolicy(elemSize int) Policy {
	if elemSize <= 0 {
		panic(fmt.Sprintf("growable: element size must be positive, got %d", elemSize))
	}

	return Policy{
		DefaultCapacity: DefaultCapacity,
		GrowthFactor:    DefaultGrowthFactor,
		ShrinkThreshold: DefaultShrinkThreshold,
		ShrinkDivisor:   DefaultShrinkDivisor,
		MaxCapacity:     maxAllocBytes/elemSize - safetyMargin,
	}
}

// Validate checks that the policy can drive Grow and Shrink.
func (p Policy) Validate() error {
	switch {
	case p.MaxCapacity <= 0:
		return fmt.Errorf("%w: max capacity must be positive, got %d", ErrInvalidCapacity, p.MaxCapacity)
	case p.DefaultCapacity < 0 || p.DefaultCapacity > p.MaxCapacity:
		return fmt.Errorf("%w: default capacity %d outside [0, %d]", ErrInvalidCapacity, p.DefaultCapacity, p.MaxCapacity)
	case p.GrowthFactor <= 1:
		return fmt.Errorf("growth factor must be greater than 1, got %v", p.GrowthFactor)
	case p.ShrinkDivisor <= 1:
		return fmt.Errorf("shrink divisor must be greater than 1, got %v", p.ShrinkDivisor)
	case p.ShrinkThreshold < 0:
		return fmt.Errorf("shrink threshold must not be negative, got %d", p.ShrinkThreshold)
	}

	return nil
}

// Resizable is the storage side of the capacity algorithm.
type Resizable interface {
	// Len returns the number of logical elements.
	Len() int
	// Cap returns the physical storage length.
	Cap() int
	// Resize reallocates the storage to the given capacity, keeping the
	// logical elements in order.
	Resize(capacity int)
}

// GrowthCapacity returns the capacity chosen for required elements.
func GrowthCapacity(required int, p Policy) int {
	c := math.Ceil(float64(required) * p.GrowthFactor)
	if c >= float64(p.MaxCapacity) {
		return p.MaxCapacity
	}

	return int(c)
}

// ShrinkCapacity returns the capacity a storage of the given capacity and
// size shrinks to, and whether it shrinks at all.
func ShrinkCapacity(capacity, size int, p Policy) (int, bool) {
	if capacity < p.ShrinkThreshold {
		return capacity, false
	}

	c := int(math.Ceil(float64(capacity) / p.ShrinkDivisor))
	if size > c || c >= capacity {
		return capacity, false
	}

	return c, true
}

// Grow makes room for required elements.
// Nothing is reallocated when the current capacity already fits.
func Grow(r Resizable, required int, p Policy) error {
	if required <= r.Cap() {
		return nil
	}

	if required > p.MaxCapacity {
		return fmt.Errorf("%w: required %d elements, max capacity is %d", ErrCapacityExceeded, required, p.MaxCapacity)
	}

	r.Resize(GrowthCapacity(required, p))

	return nil
}

// Shrink compacts the storage after a removal when the policy allows it.
// It reports whether the storage was reallocated.
func Shrink(r Resizable, p Policy) bool {
	c, ok := ShrinkCapacity(r.Cap(), r.Len(), p)
	if !ok {
		return false
	}

	r.Resize(c)

	return true
}
