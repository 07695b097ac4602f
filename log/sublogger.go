package log

import (
	"errors"
	"io"
	"strings"
)

var errSubLoggerAlreadyRegistered = errors.New("sub logger already registered")

func registerNewSubLogger(name string) *SubLogger {
	sl := &SubLogger{
		name:   name,
		levels: splitLevel("INFO|WARN|ERROR"),
	}
	subLoggers[name] = sl
	return sl
}

// NewSubLogger allows external packages to create loggers for their own
// subsystems, name is uppercased to match registry formatting
func NewSubLogger(name string) (*SubLogger, error) {
	if name == "" {
		return nil, errors.New("cannot have empty subLogger name")
	}
	name = strings.ToUpper(name)
	mu.Lock()
	defer mu.Unlock()
	if _, ok := subLoggers[name]; ok {
		return nil, errSubLoggerAlreadyRegistered
	}
	sl := &SubLogger{
		name:   name,
		levels: splitLevel("INFO|WARN|ERROR"),
	}
	subLoggers[name] = sl
	return sl, nil
}

// SetLevel overrides the registered levels for a sublogger with a pipe
// delimited level string eg "INFO|DEBUG|WARN|ERROR"
func (sl *SubLogger) SetLevel(levels string) {
	mu.Lock()
	defer mu.Unlock()
	sl.levels = splitLevel(levels)
}

// GlobalLogLevel applies a pipe delimited level string to every registered
// sublogger
func GlobalLogLevel(levels string) {
	mu.Lock()
	defer mu.Unlock()
	l := splitLevel(levels)
	for x := range subLoggers {
		subLoggers[x].levels = l
	}
}

// SetOutput redirects all log output, used by tests to silence or capture
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func splitLevel(level string) Levels {
	var l Levels
	enabled := strings.Split(level, "|")
	for x := range enabled {
		switch enabled[x] {
		case "DEBUG":
			l.Debug = true
		case "INFO":
			l.Info = true
		case "WARN":
			l.Warn = true
		case "ERROR":
			l.Error = true
		}
	}
	return l
}
