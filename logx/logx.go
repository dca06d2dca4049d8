// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging on top of [log/slog],
// with colored terminal output for levels.
package logx

import (
	"log/slog"
	"os"
	"sync"
)

// UserLevel is the threshold below which log messages are not shown.
// The default depends on build tags: [slog.LevelDebug] for debug builds
// and [slog.LevelInfo] otherwise.
var UserLevel = defaultUserLevel

var setDefault sync.Once

// logger returns the default logger, installing the colored handler
// on first use.
func logger() *slog.Logger {
	setDefault.Do(func() {
		slog.SetDefault(slog.New(NewHandler(os.Stderr)))
	})
	return slog.Default()
}

// Debug logs the given message at [slog.LevelDebug],
// with the given key-value pair arguments.
func Debug(msg string, args ...any) {
	logger().Debug(msg, args...)
}

// Info logs the given message at [slog.LevelInfo],
// with the given key-value pair arguments.
func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

// Warn logs the given message at [slog.LevelWarn],
// with the given key-value pair arguments.
func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

// Error logs the given message at [slog.LevelError],
// with the given key-value pair arguments.
func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}
