// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collections

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/collections/logging"
)

func TestConfigWithDefaults(t *testing.T) {
	require := require.New(t)

	cfg := Config{Capacity: -3}.WithDefaults()
	require.Zero(cfg.Capacity)
	require.Equal(logging.NoLogger, cfg.Logger)
	require.Equal(NoObserver{}, cfg.Observer)

	cfg = Config{Capacity: 16}.WithDefaults()
	require.Equal(16, cfg.Capacity)

	require.Equal(DefaultConfig(), Config{}.WithDefaults())
}

func TestIndexError(t *testing.T) {
	require := require.New(t)

	var err error = &IndexError{Index: 100}
	require.EqualError(err, "index 100 is out of range")
	require.ErrorIs(err, ErrIndexOutOfRange)
	require.NotErrorIs(err, ErrEmptyCollection)

	wrapped := fmt.Errorf("swap: %w", err)
	var indexErr *IndexError
	require.True(errors.As(wrapped, &indexErr))
	require.Equal(100, indexErr.Index)
}

func TestKeyError(t *testing.T) {
	require := require.New(t)

	var err error = &KeyError{Key: "c"}
	require.EqualError(err, `key "c" does not exist`)
	require.ErrorIs(err, ErrUnknownKey)

	err = &KeyError{Key: 3}
	require.EqualError(err, "key 3 does not exist")
}
