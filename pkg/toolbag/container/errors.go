package container

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound matches every KeyNotFoundError.
var ErrKeyNotFound = errors.New("key not found")

// ErrReadOnly is returned by every mutation of a Container.
var ErrReadOnly = errors.New("container is read-only")

// KeyNotFoundError reports a name or label that matches no axis.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%q not found", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// IndexError reports an axis index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for %d axes", e.Index, e.Len)
}

// UnitError reports an axis whose unit expression could not be resolved.
type UnitError struct {
	Axis string
	Err  error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("axis %q: %v", e.Axis, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }
