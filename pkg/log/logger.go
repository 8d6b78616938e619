package log

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMutex   sync.RWMutex
	defaultLogger Logger = NewZerologLogger(zerolog.Nop())
)

// GetLogger returns the library-wide default logger.
// Out of the box this is a no-op logger: a library should stay silent unless
// the embedding application opts in via SetLogger.
func GetLogger() Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return defaultLogger
}

// SetLogger installs the library-wide default logger.
//
// Example:
//
//	log.SetLogger(log.NewLogger(os.Stderr, log.LevelDebug))
func SetLogger(l Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if l == nil {
		l = NewZerologLogger(zerolog.Nop())
	}
	defaultLogger = l
}
