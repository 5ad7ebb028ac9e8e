package logger

import (
	"github.com/fatih/color" // Colored console output for each log level
)

// Leveled printf-style loggers. Each prints straight to color.Output,
// so callers add their own "[LEVEL]" prefix and trailing newline.

// Info reports progress of a command step in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn reports recoverable problems (fallbacks, skipped steps) in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error reports failures in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug prints cyan messages once Init(true) has run, and is a no-op otherwise.
var Debug = func(format string, a ...any) {}

var debugEnabled bool

// Init switches debug output on or off. It is called from the root command's
// PersistentPreRun after flags are parsed.
func Init(enableDebug bool) {
	debugEnabled = enableDebug
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// DebugEnabled reports whether Debug currently prints anything. Callers use it
// to skip building expensive debug payloads such as diffs.
func DebugEnabled() bool {
	return debugEnabled
}
