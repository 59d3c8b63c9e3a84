package osd

import (
	log "github.com/sirupsen/logrus"
)

// Config holds process-wide settings. Apply it once, before any other call.
type Config struct {
	// Logger receives debug output for every OS request. Defaults to the
	// logrus standard logger.
	Logger log.FieldLogger

	// DebugBreak makes BreakIntoDebugger trap instead of logging and
	// carrying on.
	DebugBreak bool
}

var (
	logger     log.FieldLogger = log.StandardLogger()
	debugBreak bool
)

// Configure replaces the package configuration.
func Configure(c Config) {
	logger = c.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	debugBreak = c.DebugBreak
}
