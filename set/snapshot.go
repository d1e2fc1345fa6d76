// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"github.com/luxfi/collections"
	"github.com/luxfi/collections/comparator"
)

// Snapshot is the flattened form of a set. The comparator is recorded by its
// registered name, so only sets ordered by a registered comparator can be
// restored.
type Snapshot[T any] struct {
	Comparator string `json:"comparator"`
	Elements   []T    `json:"elements"`
}

// Snapshot flattens s.
func (s *Set[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Comparator: s.cmp.Name(),
		Elements:   s.Elements(),
	}
}

// Restore rebuilds a set from snap using the default configuration.
func Restore[T any](snap Snapshot[T]) (*Set[T], error) {
	return RestoreWithConfig(snap, collections.DefaultConfig())
}

// RestoreWithConfig rebuilds a set from snap. The comparator must be
// registered under the recorded name for element type T.
func RestoreWithConfig[T any](snap Snapshot[T], cfg collections.Config) (*Set[T], error) {
	cfg = cfg.WithDefaults()
	cmp, err := comparator.Lookup[T](snap.Comparator)
	if err != nil {
		cfg.Logger.Error("failed to restore set of %d elements: %s", len(snap.Elements), err)
		return nil, err
	}
	return NewWithConfig(cmp, cfg, snap.Elements...), nil
}
