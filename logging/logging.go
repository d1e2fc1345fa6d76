// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging defines the logger accepted by the containers.
package logging

import "fmt"

//go:generate go run go.uber.org/mock/mockgen -package=loggermock -destination=loggermock/logger.go . Logger

// Logger defines the logging interface used by container packages
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Fatal(format string, args ...interface{})
}

// NoLog is a no-op logger implementation
type NoLog struct{}

func (NoLog) Debug(string, ...interface{}) {}
func (NoLog) Info(string, ...interface{})  {}
func (NoLog) Warn(string, ...interface{})  {}
func (NoLog) Error(string, ...interface{}) {}

// Fatal panics; containers never call it on a recoverable path.
func (NoLog) Fatal(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// NoLogger is a default no-op logger instance
var NoLogger Logger = NoLog{}
