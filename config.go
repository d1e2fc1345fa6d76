// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collections

import "github.com/luxfi/collections/logging"

// Observer is notified of structural events inside a container.
// Implementations must be cheap; they run on the caller's goroutine.
type Observer interface {
	// Reallocated is called whenever a backing buffer changes capacity.
	Reallocated(oldCapacity, newCapacity int)

	// Walked is called after a merge walk named op visited steps elements.
	Walked(op string, steps int)
}

// NoObserver discards every notification.
type NoObserver struct{}

func (NoObserver) Reallocated(int, int) {}
func (NoObserver) Walked(string, int)   {}

// Config is a convenience struct for container configuration
type Config struct {
	// Capacity is the number of slots reserved up front.
	Capacity int
	Logger   logging.Logger
	Observer Observer
}

// DefaultConfig returns a configuration that reserves nothing and discards
// logs and events.
func DefaultConfig() Config {
	return Config{
		Logger:   logging.NoLogger,
		Observer: NoObserver{},
	}
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.Capacity < 0 {
		c.Capacity = 0
	}
	if c.Logger == nil {
		c.Logger = logging.NoLogger
	}
	if c.Observer == nil {
		c.Observer = NoObserver{}
	}
	return c
}
