// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAdapter(t *testing.T) {
	require := require.New(t)

	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	log.Debug("reallocated %d -> %d", 2, 4)
	log.Info("info %s", "message")
	log.Warn("rejected %s", "union")
	log.Error("failed")

	entries := logs.AllUntimed()
	require.Len(entries, 4)
	require.Equal(zapcore.DebugLevel, entries[0].Level)
	require.Equal("reallocated 2 -> 4", entries[0].Message)
	require.Equal(zapcore.InfoLevel, entries[1].Level)
	require.Equal("info message", entries[1].Message)
	require.Equal(zapcore.WarnLevel, entries[2].Level)
	require.Equal("rejected union", entries[2].Message)
	require.Equal(zapcore.ErrorLevel, entries[3].Level)
}

func TestZapAdapterNamed(t *testing.T) {
	require := require.New(t)

	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZapAdapter(zap.New(core)).(*ZapAdapter).Named("vector")

	log.Debug("dropped below level")
	log.Info("kept")

	entries := logs.AllUntimed()
	require.Len(entries, 1)
	require.Equal("vector", entries[0].LoggerName)
}

func TestZapAdapterNilLogger(t *testing.T) {
	require.NotPanics(t, func() {
		NewZapAdapter(nil).Info("nothing")
	})
}

func TestNoLog(t *testing.T) {
	require := require.New(t)

	require.NotPanics(func() {
		NoLogger.Debug("x")
		NoLogger.Info("x")
		NoLogger.Warn("x")
		NoLogger.Error("x")
	})
	require.PanicsWithValue("fatal 1", func() {
		NoLogger.Fatal("fatal %d", 1)
	})
}
