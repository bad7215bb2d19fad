package linq

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required collection argument is nil.
var ErrInvalidArgument = errors.New("invalid argument")

// requireCollection rejects a nil slice argument.
func requireCollection[T any](name string, items []T) error {
	if items == nil {
		return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, name)
	}
	return nil
}
