// Package utils provides utility functions for the curioctl CLI.
// This file wires the shared logger into the CLI and the resty transport.
package utils

import (
	"os"

	"github.com/curio-dev/curio/cmd/curioctl/config"
	"github.com/curio-dev/curio/internal/logging"
)

// RestyLogger adapts the shared logger to resty's Logger interface so wire
// traces from the HTTP client honor the configured level instead of printing
// through resty's default stderr logger.
type RestyLogger struct{}

func (RestyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

func (RestyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

func (RestyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// debugRequested reports whether the DEBUG environment variable asks for
// request tracing.
func debugRequested() bool {
	v := os.Getenv("DEBUG")
	return v == "true" || v == "1"
}

// SetupLogging configures logger output for a command invocation. Command
// output (tables, JSON) must stay clean for piping, so log output is
// suppressed unless DEBUG is set, in which case every request and response
// is traced.
func SetupLogging() {
	if debugRequested() {
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	logging.SetLevel(config.Global.LogLevel)
	logging.SuppressOutput()
}
