package osd

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Getenv returns the value of the environment variable name and whether it
// is set.
func Getenv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Setenv sets the environment variable name to value. If overwrite is false
// and name is already set, the existing value is kept.
func Setenv(name, value string, overwrite bool) error {
	if !overwrite {
		if _, ok := os.LookupEnv(name); ok {
			return nil
		}
	}
	return os.Setenv(name, value)
}

// Getpid returns the ID of the current process.
func Getpid() int {
	return os.Getpid()
}

// ClipboardText always returns an empty string. There's no clipboard on a
// headless host.
func ClipboardText() string {
	return ""
}

// SetClipboardText discards text.
func SetClipboardText(text string) error {
	return nil
}

// BreakIntoDebugger stops in an attached debugger if debug breaks are
// enabled with Configure. Otherwise it logs message and returns.
func BreakIntoDebugger(message string) {
	if !debugBreak {
		logger.WithFields(log.Fields{"message": message}).Warn("Ignoring exception")
		return
	}

	logger.WithFields(log.Fields{"message": message}).Warn("Exception, attempting to fall into debugger")
	debugTrap()
}
