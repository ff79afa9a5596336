package vkcontext

import (
	"log"

	"github.com/renderware/vkcontext/driver"
)

// stdLogger writes leveled lines through the standard library logger.
// It is the default when Config.Logger is nil.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...interface{}) {
	log.Printf("[debug] "+format, args...)
}

func (stdLogger) Infof(format string, args ...interface{}) {
	log.Printf("[info] "+format, args...)
}

func (stdLogger) Warnf(format string, args ...interface{}) {
	log.Printf("[warn] "+format, args...)
}

func (stdLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[error] "+format, args...)
}

// DefaultLogger returns the standard-library-backed logger used when
// no collaborator is supplied.
func DefaultLogger() driver.Logger {
	return stdLogger{}
}
