// Package common holds cross-cutting concerns shared by the kaitai runtime
// and its tools: leveled logging in the style the rest of the module
// expects from a diagnostic backend.
package common

import (
	"io"
	"log"
	"os"
)

// LogLevel controls which calls reach a Logger's output.
type LogLevel int

const (
	LogLevelTrace LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelNotice
	LogLevelWarning
	LogLevelError
	LogLevelOff
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelTrace:
		return "TRACE"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelNotice:
		return "NOTICE"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelError:
		return "ERROR"
	default:
		return "OFF"
	}
}

// Logger is the diagnostic sink used across the module. Format strings
// follow fmt.Printf conventions.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// Log is the package-level logger used by default; replace it with
// SetLogger.
var Log Logger = NewDummyLogger()

// SetLogger installs logger as the package-level Log.
func SetLogger(logger Logger) {
	Log = logger
}

// DummyLogger discards everything. It is the default so that importing the
// module produces no output unless a caller opts in.
type DummyLogger struct{}

func NewDummyLogger() *DummyLogger { return &DummyLogger{} }

func (*DummyLogger) Error(string, ...interface{})   {}
func (*DummyLogger) Warning(string, ...interface{}) {}
func (*DummyLogger) Notice(string, ...interface{})  {}
func (*DummyLogger) Info(string, ...interface{})    {}
func (*DummyLogger) Debug(string, ...interface{})   {}
func (*DummyLogger) Trace(string, ...interface{})   {}
func (*DummyLogger) IsLogLevel(LogLevel) bool       { return false }

// ConsoleLogger writes level-tagged lines to stderr via the standard log
// package, filtered by a minimum level.
type ConsoleLogger struct {
	logLevel LogLevel
	output   *log.Logger
}

// NewConsoleLogger returns a ConsoleLogger that only emits calls at or above
// logLevel.
func NewConsoleLogger(logLevel LogLevel) *ConsoleLogger {
	return &ConsoleLogger{
		logLevel: logLevel,
		output:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (c *ConsoleLogger) IsLogLevel(level LogLevel) bool {
	return c.logLevel <= level
}

func (c *ConsoleLogger) print(level LogLevel, format string, args []interface{}) {
	if !c.IsLogLevel(level) {
		return
	}
	c.output.Printf("["+level.String()+"] "+format, args...)
}

func (c *ConsoleLogger) Error(format string, args ...interface{})   { c.print(LogLevelError, format, args) }
func (c *ConsoleLogger) Warning(format string, args ...interface{}) { c.print(LogLevelWarning, format, args) }
func (c *ConsoleLogger) Notice(format string, args ...interface{})  { c.print(LogLevelNotice, format, args) }
func (c *ConsoleLogger) Info(format string, args ...interface{})    { c.print(LogLevelInfo, format, args) }
func (c *ConsoleLogger) Debug(format string, args ...interface{})   { c.print(LogLevelDebug, format, args) }
func (c *ConsoleLogger) Trace(format string, args ...interface{})   { c.print(LogLevelTrace, format, args) }

// WriterLogger is a ConsoleLogger variant that writes to an arbitrary
// io.Writer rather than always stderr — useful in tests, where output needs
// to land in a buffer instead of the process's real stderr.
type WriterLogger struct {
	logLevel LogLevel
	output   *log.Logger
}

func NewWriterLogger(logLevel LogLevel, w io.Writer) *WriterLogger {
	return &WriterLogger{
		logLevel: logLevel,
		output:   log.New(w, "", log.LstdFlags),
	}
}

func (w *WriterLogger) IsLogLevel(level LogLevel) bool {
	return w.logLevel <= level
}

func (w *WriterLogger) print(level LogLevel, format string, args []interface{}) {
	if !w.IsLogLevel(level) {
		return
	}
	w.output.Printf("["+level.String()+"] "+format, args...)
}

func (w *WriterLogger) Error(format string, args ...interface{})   { w.print(LogLevelError, format, args) }
func (w *WriterLogger) Warning(format string, args ...interface{}) { w.print(LogLevelWarning, format, args) }
func (w *WriterLogger) Notice(format string, args ...interface{})  { w.print(LogLevelNotice, format, args) }
func (w *WriterLogger) Info(format string, args ...interface{})    { w.print(LogLevelInfo, format, args) }
func (w *WriterLogger) Debug(format string, args ...interface{})   { w.print(LogLevelDebug, format, args) }
func (w *WriterLogger) Trace(format string, args ...interface{})   { w.print(LogLevelTrace, format, args) }
