// Package diary provides the presentation widgets of a mobile-style diary:
// a bottom navigation bar with an expandable action sheet and floating action
// button, a toolbar, and tag chips.
//
// Widgets are plain structs driven by the host loop. They receive a layout
// rectangle, pointer events and frame ticks, and describe themselves as
// draw.Command lists; they never touch SDL directly. The host package wires
// them to an SDL window.
package diary

import (
	"log/slog"

	"github.com/lounah/diary/pkg/diary/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before creating widgets to capture their start-up logs.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum log level of widget and host diagnostics.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLocale selects the language of built-in strings, most preferred first.
func SetLocale(tags ...string) error {
	if err := internal.SetLocale(tags...); err != nil {
		return NewInfrastructureError("set_locale", err)
	}
	return nil
}
