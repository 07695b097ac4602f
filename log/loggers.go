// Package log provides a levelled, sectioned console logger for the
// backtester. Each subsystem logs through its own sublogger so output can be
// filtered per section without a process-wide level.
package log

import (
	"fmt"
	"time"
)

// Info takes a pointer SubLogger struct and string, sends to stage
func Info(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Info {
		return
	}
	stage(sl.name, infoHeader, data)
}

// Infoln takes a pointer SubLogger struct and interface, sends to stage
func Infoln(sl *SubLogger, v ...interface{}) {
	Info(sl, fmt.Sprintln(v...))
}

// Infof takes a pointer SubLogger struct, string and interface formats,
// sends to stage
func Infof(sl *SubLogger, data string, v ...interface{}) {
	Info(sl, fmt.Sprintf(data, v...))
}

// Debug takes a pointer SubLogger struct and string, sends to stage
func Debug(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Debug {
		return
	}
	stage(sl.name, debugHeader, data)
}

// Debugln takes a pointer SubLogger struct and interface, sends to stage
func Debugln(sl *SubLogger, v ...interface{}) {
	Debug(sl, fmt.Sprintln(v...))
}

// Debugf takes a pointer SubLogger struct, string and interface formats,
// sends to stage
func Debugf(sl *SubLogger, data string, v ...interface{}) {
	Debug(sl, fmt.Sprintf(data, v...))
}

// Warn takes a pointer SubLogger struct and string, sends to stage
func Warn(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Warn {
		return
	}
	stage(sl.name, warnHeader, data)
}

// Warnln takes a pointer SubLogger struct and interface, sends to stage
func Warnln(sl *SubLogger, v ...interface{}) {
	Warn(sl, fmt.Sprintln(v...))
}

// Warnf takes a pointer SubLogger struct, string and interface formats,
// sends to stage
func Warnf(sl *SubLogger, data string, v ...interface{}) {
	Warn(sl, fmt.Sprintf(data, v...))
}

// Error takes a pointer SubLogger struct and interface, sends to stage
func Error(sl *SubLogger, data ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Error {
		return
	}
	stage(sl.name, errorHeader, fmt.Sprint(data...))
}

// Errorln takes a pointer SubLogger struct and interface, sends to stage
func Errorln(sl *SubLogger, v ...interface{}) {
	Error(sl, fmt.Sprintln(v...))
}

// Errorf takes a pointer SubLogger struct, string and interface formats,
// sends to stage
func Errorf(sl *SubLogger, data string, v ...interface{}) {
	Error(sl, fmt.Sprintf(data, v...))
}

func stage(name, header, data string) {
	fmt.Fprintf(output, "%s%s%s%s%s%s\n",
		header,
		time.Now().Format(timestampFormat),
		spacer,
		name,
		spacer,
		data)
}
