// Copyright (C) 2019-2025, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package collections

import (
	"errors"
	"fmt"
)

// Common collection errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyCollection = errors.New("collection is empty")
	ErrUnknownKey      = errors.New("unknown key")
	ErrNotComparable   = errors.New("not comparable")
	ErrIncompatibleSet = errors.New("incompatible set")
	ErrInvalidArgument = errors.New("invalid argument")
)

// IndexError reports an index that is out of range after negative indices
// have been normalized.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d is out of range", e.Index)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// KeyError reports a lookup that exhausted every candidate key.
type KeyError struct {
	Key any
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %#v does not exist", e.Key)
}

func (e *KeyError) Unwrap() error {
	return ErrUnknownKey
}
