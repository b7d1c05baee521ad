// Package output provides terminal logging and styling for the jam CLI.
// Diagnostics go to stderr through charmbracelet/log; generated source text
// is written to stdout by the caller and is never styled.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = newLogger(os.Stderr, false)

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		ReportCaller:    verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetupLogging configures the logger based on verbosity.
func SetupLogging(verbose bool) {
	logger = newLogger(os.Stderr, verbose)
}

// SetWriter redirects log output, keeping the current level.
func SetWriter(w io.Writer) {
	level := logger.GetLevel()
	logger = newLogger(w, level == log.DebugLevel)
}

// Logger returns the shared logger.
func Logger() *log.Logger {
	return logger
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}
