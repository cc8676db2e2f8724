package container

import "fmt"

// Error is a sentinel error returned by Array operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfRange      Error = "index out of range"
	ErrInvalidCapacity Error = "invalid capacity"
	ErrNonContiguous   Error = "write would leave a gap in the occupied prefix"
	ErrZeroValue       Error = "zero value cannot be stored"
)

func outOfRange(index, low, high int) error {
	return fmt.Errorf("%w: %d not in [%d, %d)", ErrOutOfRange, index, low, high)
}
