package kinetic

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes level-tagged lines with the standard log package.
// Debug and info go to out, warnings and errors to errOut.
type DefaultLogger struct {
	debug  atomic.Bool
	prefix string
	out    *log.Logger
	errOut *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewDefaultLoggerTo(os.Stdout, os.Stderr, log.LstdFlags|log.Lmicroseconds, prefix, debug)
}

func NewDefaultLoggerTo(out, errOut io.Writer, flags int, prefix string, debug bool) *DefaultLogger {
	l := &DefaultLogger{
		prefix: prefix,
		out:    log.New(out, "", flags),
		errOut: log.New(errOut, "", flags),
	}
	l.debug.Store(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool    { return l.debug.Load() }
func (l *DefaultLogger) SetDebug(enabled bool) { l.debug.Store(enabled) }

func (l *DefaultLogger) write(dst *log.Logger, level string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		dst.Printf("[%s] %s: %s", l.prefix, level, msg)
		return
	}
	dst.Printf("%s: %s", level, msg)
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.DebugEnabled() {
		l.write(l.out, "DEBUG", format, args...)
	}
}

func (l *DefaultLogger) Infof(format string, args ...any)  { l.write(l.out, "INFO", format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.write(l.errOut, "WARN", format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.write(l.errOut, "ERROR", format, args...) }

// LoggingModule installs a logger as a resource. Backend "zap" selects the
// structured zap logger; anything else uses DefaultLogger.
type LoggingModule struct {
	Prefix  string
	Debug   bool
	Backend string
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	if m.Backend == "zap" {
		logger, err := NewZapLogger(m.Prefix, m.Debug)
		if err == nil {
			cmd.AddResources(logger)
			return
		}
		fmt.Fprintf(os.Stderr, "zap logger unavailable, falling back to default: %v\n", err)
	}
	cmd.AddResources(NewDefaultLogger(m.Prefix, m.Debug))
}

type nopLogger struct{}

func NewNopLogger() Logger              { return nopLogger{} }
func (nopLogger) DebugEnabled() bool    { return false }
func (nopLogger) SetDebug(bool)         {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Logger returns the installed Logger resource, or a no-op logger. Never nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}
