package logger

import (
	"fmt"
	"os"
	"sync"
)

// backendLog is the logging backend used to create all subsystem loggers.
var backendLog = NewBackend()

var (
	subsystemsMutex sync.Mutex
	subsystems      = make(map[string]*Logger)
)

// RegisterSubSystem creates and registers a logger for the given subsystem
// tag. If a logger was already registered for the tag, it is returned
// instead.
func RegisterSubSystem(subsystem string) *Logger {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	logger, ok := subsystems[subsystem]
	if !ok {
		logger = backendLog.Logger(subsystem)
		subsystems[subsystem] = logger
	}
	return logger
}

// InitLog attaches a stdout log writer at the given level, optionally a
// file writer, and starts the backend. It must be called before any
// subsystem produces output and may only be called once.
func InitLog(logFile string, level Level) error {
	err := backendLog.AddLogWriter(os.Stdout, level)
	if err != nil {
		return fmt.Errorf("error adding stdout to the loggerfor level %s: %s", level, err)
	}
	if logFile != "" {
		err = backendLog.AddLogFile(logFile, LevelTrace)
		if err != nil {
			return fmt.Errorf("error adding log file %s as log rotator for level %s: %s", logFile, LevelTrace, err)
		}
	}
	return backendLog.Run()
}

// SetLogLevels sets the logging level for all registered subsystems.
func SetLogLevels(level Level) {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	for _, logger := range subsystems {
		logger.SetLevel(level)
	}
}

// SetLogLevel sets the logging level of a single registered subsystem. It
// returns false when no such subsystem exists.
func SetLogLevel(subsystem string, level Level) bool {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	logger, ok := subsystems[subsystem]
	if !ok {
		return false
	}
	logger.SetLevel(level)
	return true
}

// SupportedLevels lists the accepted log level strings.
func SupportedLevels() []string {
	return []string{"trace", "debug", "info", "warn", "error", "critical", "off"}
}

// Close shuts the logging backend down, flushing any pending output.
func Close() {
	backendLog.Close()
}
