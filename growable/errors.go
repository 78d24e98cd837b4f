package growable

import "errors"

var (
	// ErrIndexOutOfRange reports an index or bound outside the logical elements.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidRange reports a range whose start is not before its end.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidCapacity reports a negative requested capacity.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrCapacityExceeded reports a request above Policy.MaxCapacity.
	// It depends on the data rather than on a caller bug, so it is kept
	// apart from the precondition errors above.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
