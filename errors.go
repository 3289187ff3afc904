package chainedtable

import (
	"errors"
	"fmt"
)

// ErrNonExistentKey matches any *NonExistentKeyError via errors.Is,
// whatever the key type.
var ErrNonExistentKey = errors.New("non existent key")

// NonExistentKeyError is returned by Get when the key is not stored.
type NonExistentKeyError[K comparable] struct {
	Key K
}

func (e *NonExistentKeyError[K]) Error() string {
	return fmt.Sprintf("non existent key in table: %v", e.Key)
}

func (e *NonExistentKeyError[K]) Is(target error) bool {
	return target == ErrNonExistentKey
}
