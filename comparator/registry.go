// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package comparator

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/luxfi/collections"
)

const (
	naturalKind = "natural"
	reverseKind = "reverse"
)

var builtinKinds = []string{naturalKind, reverseKind}

// builtinKey identifies the shared comparator of one kind for one type.
type builtinKey struct {
	kind string
	typ  reflect.Type
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]any)
	builtins   = make(map[builtinKey]any)
)

func init() {
	registerBuiltins[int]()
	registerBuiltins[int8]()
	registerBuiltins[int16]()
	registerBuiltins[int32]()
	registerBuiltins[int64]()
	registerBuiltins[uint]()
	registerBuiltins[uint8]()
	registerBuiltins[uint16]()
	registerBuiltins[uint32]()
	registerBuiltins[uint64]()
	registerBuiltins[uintptr]()
	registerBuiltins[float32]()
	registerBuiltins[float64]()
	registerBuiltins[string]()
}

// registerBuiltins creates the natural and reverse comparators of T up front
// so that snapshots using them restore without a prior Natural call.
func registerBuiltins[T constraints.Ordered]() {
	Natural[T]()
	Reverse[T]()
}

// Register names fn so that containers using it can be restored from a
// snapshot.
func Register[T any](name string, fn Func[T]) *Comparator[T] {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" {
		panic("comparator: Register called with empty name")
	}
	if fn == nil {
		panic("comparator: Register func is nil")
	}
	if _, dup := registry[name]; dup {
		panic("comparator: Register called twice for " + name)
	}
	c := &Comparator[T]{name: name, fn: fn}
	registry[name] = c
	return c
}

// Lookup returns the comparator registered under name for element type T.
func Lookup[T any](name string) (*Comparator[T], error) {
	typ := reflect.TypeFor[T]()

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, kind := range builtinKinds {
		entry, ok := builtins[builtinKey{kind: kind, typ: typ}]
		if !ok {
			continue
		}
		if c := mustComparator[T](entry); c.name == name {
			return c, nil
		}
	}

	entry, ok := registry[name]
	if !ok {
		return nil, &collections.KeyError{Key: name}
	}
	c, ok := entry.(*Comparator[T])
	if !ok {
		return nil, fmt.Errorf("%w: comparator %q does not order %s", collections.ErrInvalidArgument, name, typ)
	}
	return c, nil
}

// Names returns the registered names in ascending order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// builtin returns the shared comparator of kind for T, creating it on first
// use. Builtins are keyed by type, so distinct types that print alike never
// share a token. The name is also published to the registry unless another
// comparator already holds it.
func builtin[T any](kind string, fn Func[T]) *Comparator[T] {
	key := builtinKey{kind: kind, typ: reflect.TypeFor[T]()}

	registryMu.RLock()
	entry, ok := builtins[key]
	registryMu.RUnlock()
	if ok {
		return mustComparator[T](entry)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	// Another caller may have won the race between the locks.
	if entry, ok := builtins[key]; ok {
		return mustComparator[T](entry)
	}
	c := &Comparator[T]{name: kind + "[" + typeName(key.typ) + "]", fn: fn}
	builtins[key] = c
	if _, taken := registry[c.name]; !taken {
		registry[c.name] = c
	}
	return c
}

// typeName qualifies named types by their import path.
func typeName(typ reflect.Type) string {
	if typ.PkgPath() == "" || typ.Name() == "" {
		return typ.String()
	}
	return typ.PkgPath() + "." + typ.Name()
}

func mustComparator[T any](entry any) *Comparator[T] {
	c, ok := entry.(*Comparator[T])
	if !ok {
		panic(fmt.Sprintf("comparator: entry %T does not order %s", entry, reflect.TypeFor[T]()))
	}
	return c
}
