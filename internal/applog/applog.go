// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

// Package applog manages the application data directory and the optional
// leveled log file written into it.
package applog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const appName = "hashfetch"

// maxLogSize is the size at which the log file is rotated to ".old".
const maxLogSize = 1000 * 1000

// DataDir returns the application data directory, falling back to a
// relative directory when the user config dir cannot be resolved.
func DataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", appName)
	}
	return filepath.Join(dir, appName)
}

// EnsureDataDir creates the data directory if it does not exist.
func EnsureDataDir() error {
	if err := os.MkdirAll(DataDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create application data directory: %w", err)
	}
	return nil
}

// Setup configures the default slog logger. With an empty level, logging
// is discarded entirely; "info" and "debug" write to the log file in the
// data directory, rotating the previous file once it exceeds maxLogSize.
func Setup(level string) error {
	if level == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	default:
		return fmt.Errorf("invalid log level %q (expected debug or info)", level)
	}

	if err := EnsureDataDir(); err != nil {
		return err
	}
	f, err := openLogFile()
	if err != nil {
		return fmt.Errorf("failed to create application log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})))
	slog.Debug("logging enabled", "level", level, "os", runtime.GOOS, "arch", runtime.GOARCH)
	return nil
}

// LogFile returns the path of the primary log file.
func LogFile() string {
	return filepath.Join(DataDir(), appName+".log")
}

// openLogFile opens the log file for appending. An oversized file is first
// renamed to the backup path; if even that fails it is removed so the log
// cannot grow indefinitely.
func openLogFile() (*os.File, error) {
	path := LogFile()
	if fi, err := os.Stat(path); err == nil && fi.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			_ = os.Remove(path)
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
