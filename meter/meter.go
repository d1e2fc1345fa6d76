// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package meter exports container events as prometheus metrics.
package meter

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/collections"
)

const opLabel = "op"

var (
	_ collections.Observer = (*Metrics)(nil)

	opLabels = []string{opLabel}
)

// Metrics records reallocations and merge walks. It is safe to share one
// Metrics between many containers.
type Metrics struct {
	// number of times a backing buffer changed capacity
	reallocations prometheus.Counter
	// total number of slots allocated by growing buffers
	allocatedSlots prometheus.Counter
	// number of merge walks per operation
	walks *prometheus.CounterVec
	// number of elements visited by merge walks per operation
	steps *prometheus.CounterVec
}

// New returns Metrics registered on reg under namespace.
func New(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		reallocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reallocations_total",
			Help:      "number of times a backing buffer changed capacity",
		}),
		allocatedSlots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocated_slots_total",
			Help:      "number of slots added by growing backing buffers",
		}),
		walks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_walks_total",
			Help:      "number of merge walks performed",
		}, opLabels),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_steps_total",
			Help:      "number of elements visited by merge walks",
		}, opLabels),
	}
	err := errors.Join(
		reg.Register(m.reallocations),
		reg.Register(m.allocatedSlots),
		reg.Register(m.walks),
		reg.Register(m.steps),
	)
	return m, err
}

func (m *Metrics) Reallocated(oldCapacity, newCapacity int) {
	m.reallocations.Inc()
	if grown := newCapacity - oldCapacity; grown > 0 {
		m.allocatedSlots.Add(float64(grown))
	}
}

func (m *Metrics) Walked(op string, steps int) {
	labels := prometheus.Labels{opLabel: op}
	m.walks.With(labels).Inc()
	m.steps.With(labels).Add(float64(steps))
}
