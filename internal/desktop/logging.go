package desktop

import (
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// NewLogger returns the logger shared by startup code and the Wails runtime.
// Messages below level are dropped, so startup code logs with the same
// verbosity the runtime applies once it is up.
func NewLogger(logFile string, level logger.LogLevel) logger.Logger {
	var base logger.Logger
	if logFile != "" {
		base = logger.NewFileLogger(logFile)
	} else {
		base = logger.NewDefaultLogger()
	}
	return &leveledLogger{Logger: base, level: level}
}

type leveledLogger struct {
	logger.Logger
	level logger.LogLevel
}

func (l *leveledLogger) Trace(message string) {
	if l.level <= logger.TRACE {
		l.Logger.Trace(message)
	}
}

func (l *leveledLogger) Debug(message string) {
	if l.level <= logger.DEBUG {
		l.Logger.Debug(message)
	}
}

func (l *leveledLogger) Info(message string) {
	if l.level <= logger.INFO {
		l.Logger.Info(message)
	}
}

func (l *leveledLogger) Warning(message string) {
	if l.level <= logger.WARNING {
		l.Logger.Warning(message)
	}
}
