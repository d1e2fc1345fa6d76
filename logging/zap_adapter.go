// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

var _ Logger = (*ZapAdapter)(nil)

// ZapAdapter adapts zap.Logger to the container Logger interface
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter creates a new ZapAdapter. A nil logger yields a no-op adapter.
func NewZapAdapter(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAdapter{logger: logger.Sugar()}
}

// Named returns an adapter whose entries carry name as the logger name.
func (z *ZapAdapter) Named(name string) *ZapAdapter {
	return &ZapAdapter{logger: z.logger.Named(name)}
}

func (z *ZapAdapter) Debug(format string, args ...interface{}) {
	z.logger.Debugf(format, args...)
}

func (z *ZapAdapter) Info(format string, args ...interface{}) {
	z.logger.Infof(format, args...)
}

func (z *ZapAdapter) Warn(format string, args ...interface{}) {
	z.logger.Warnf(format, args...)
}

func (z *ZapAdapter) Error(format string, args ...interface{}) {
	z.logger.Errorf(format, args...)
}

func (z *ZapAdapter) Fatal(format string, args ...interface{}) {
	z.logger.Fatalf(format, args...)
}
