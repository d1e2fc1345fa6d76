// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package comparator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/collections"
)

type celsius float64

func TestNaturalIdentity(t *testing.T) {
	require := require.New(t)

	a := Natural[int]()
	b := Natural[int]()
	require.Same(a, b)
	require.Equal("natural[int]", a.Name())

	require.Negative(a.Compare(1, 2))
	require.Zero(a.Compare(2, 2))
	require.Positive(a.Compare(3, 2))

	// Named types get their own token.
	c := Natural[celsius]()
	require.Equal("natural[github.com/luxfi/collections/comparator.celsius]", c.Name())
}

func TestReverse(t *testing.T) {
	require := require.New(t)

	r := Reverse[string]()
	require.Same(r, Reverse[string]())
	require.Positive(r.Compare("a", "b"))
	require.Negative(r.Compare("b", "a"))
	require.NotEqual(Natural[string]().Name(), r.Name())
}

func TestNewIsAnonymous(t *testing.T) {
	require := require.New(t)

	fn := func(a, b int) int { return a - b }
	a := New(Func[int](fn))
	b := New(Func[int](fn))

	require.NotSame(a, b)
	require.Empty(a.Name())
	require.True(strings.HasPrefix(a.String(), "<anonymous "))
	require.Panics(func() {
		New[int](nil)
	})
}

func TestRegisterAndLookup(t *testing.T) {
	require := require.New(t)

	registered := Register("test.length", func(a, b string) int {
		return len(a) - len(b)
	})
	require.Equal("test.length", registered.String())

	found, err := Lookup[string]("test.length")
	require.NoError(err)
	require.Same(registered, found)
	require.Contains(Names(), "test.length")

	_, err = Lookup[int]("test.length")
	require.ErrorIs(err, collections.ErrInvalidArgument)

	_, err = Lookup[string]("test.missing")
	require.ErrorIs(err, collections.ErrUnknownKey)
	require.EqualError(err, `key "test.missing" does not exist`)
}

func TestRegisterPanics(t *testing.T) {
	require := require.New(t)

	Register("test.dup", func(a, b int) int { return a - b })
	require.Panics(func() {
		Register("test.dup", func(a, b int) int { return b - a })
	})
	require.Panics(func() {
		Register("", func(a, b int) int { return a - b })
	})
	require.Panics(func() {
		Register[int]("test.nil", nil)
	})
}

func TestNamesSorted(t *testing.T) {
	Natural[uint8]()
	Reverse[uint8]()

	names := Names()
	require.IsNonDecreasing(t, names)
}

func TestNaturalDistinguishesTypesThatPrintAlike(t *testing.T) {
	require := require.New(t)

	first := func() string {
		type Key int
		c := Natural[Key]()
		require.Same(c, Natural[Key]())
		require.Negative(c.Compare(1, 2))
		return c.Name()
	}()
	second := func() string {
		type Key string
		c := Natural[Key]()
		require.Same(c, Natural[Key]())
		require.Negative(c.Compare("a", "b"))

		// The shared name still restores the token for this type.
		found, err := Lookup[Key](c.Name())
		require.NoError(err)
		require.Same(c, found)
		return c.Name()
	}()
	require.Equal(first, second)
}

func TestNaturalAfterNameIsTaken(t *testing.T) {
	require := require.New(t)

	type Score float64
	name := "reverse[github.com/luxfi/collections/comparator.Score]"
	taken := Register(name, func(a, b string) int { return len(a) - len(b) })

	c := Reverse[Score]()
	require.Equal(name, c.Name())
	require.Positive(c.Compare(1, 2))

	found, err := Lookup[Score](name)
	require.NoError(err)
	require.Same(c, found)

	byName, err := Lookup[string](name)
	require.NoError(err)
	require.Same(taken, byName)
}

func TestBuiltinsRestoreWithoutPriorUse(t *testing.T) {
	require := require.New(t)

	c, err := Lookup[uint16]("reverse[uint16]")
	require.NoError(err)
	require.Same(Reverse[uint16](), c)
	require.Contains(Names(), "natural[float32]")
}
