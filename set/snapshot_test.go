// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luxfi/collections"
	"github.com/luxfi/collections/comparator"
	"github.com/luxfi/collections/logging/loggermock"
)

var byLength = comparator.Register[string]("set_test.by_length", func(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
})

func TestSnapshotRoundTrip(t *testing.T) {
	require := require.New(t)

	s := NewFunc(byLength, "spam", "a", "bar", "foo")
	snap := s.Snapshot()
	require.Equal("set_test.by_length", snap.Comparator)
	require.Equal([]string{"a", "bar", "foo", "spam"}, snap.Elements)

	restored, err := Restore(snap)
	require.NoError(err)
	require.Same(byLength, restored.Comparator())
	require.Equal(s.Elements(), restored.Elements())

	// The restored set shares the comparator token, so it is compatible.
	isEqual, err := s.IsEqualSet(restored)
	require.NoError(err)
	require.True(isEqual)
}

func TestSnapshotJSON(t *testing.T) {
	require := require.New(t)

	s := New(3, 1, 2)
	data, err := json.Marshal(s.Snapshot())
	require.NoError(err)
	require.JSONEq(`{"comparator":"natural[int]","elements":[1,2,3]}`, string(data))

	var snap Snapshot[int]
	require.NoError(json.Unmarshal(data, &snap))

	restored, err := Restore(snap)
	require.NoError(err)
	require.Same(s.Comparator(), restored.Comparator())
	require.Equal([]int{1, 2, 3}, restored.Elements())
}

func TestRestoreNormalizesElements(t *testing.T) {
	require := require.New(t)

	restored, err := Restore(Snapshot[int]{
		Comparator: "natural[int]",
		Elements:   []int{3, 1, 3, 2},
	})
	require.NoError(err)
	require.Equal([]int{1, 2, 3}, restored.Elements())
}

func TestRestoreAnonymousComparator(t *testing.T) {
	require := require.New(t)

	s := NewFunc(comparator.New(func(a, b int) int { return a - b }), 1, 2)
	snap := s.Snapshot()
	require.Empty(snap.Comparator)

	_, err := Restore(snap)
	require.ErrorIs(err, collections.ErrUnknownKey)
}

func TestRestoreWrongElementType(t *testing.T) {
	require := require.New(t)

	_, err := Restore(Snapshot[int]{Comparator: "set_test.by_length"})
	require.ErrorIs(err, collections.ErrInvalidArgument)
}

func TestRestoreWithConfig(t *testing.T) {
	require := require.New(t)

	cfg := collections.DefaultConfig()
	cfg.Capacity = 16
	restored, err := RestoreWithConfig(New(1, 2).Snapshot(), cfg)
	require.NoError(err)
	require.Equal(16, restored.Config().Capacity)
	require.Equal([]int{1, 2}, restored.Elements())
}

func TestRestoreFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)

	log := loggermock.NewMockLogger(ctrl)
	log.EXPECT().Error("failed to restore set of %d elements: %s", 2, gomock.Any()).Times(1)

	cfg := collections.Config{Logger: log}
	_, err := RestoreWithConfig(Snapshot[int]{Comparator: "set_test.missing", Elements: []int{1, 2}}, cfg)
	require.ErrorIs(t, err, collections.ErrUnknownKey)
}
