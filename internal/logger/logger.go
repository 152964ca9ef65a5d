package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// DefaultFilePath is where the log tee writes when enabled, relative to the working directory.
const DefaultFilePath = "logs/sketch.txt"

// Logger is the leveled logger handed to every component that reports anything.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Default writes debug/info lines to stdout and warn/error lines to stderr.
// When a tee file is attached, every line is also appended to it.
type Default struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
	tee    *log.Logger
	file   io.Closer
}

// New returns a Default logger. prefix is printed in brackets before the level.
func New(prefix string, debug bool) *Default {
	return newWithWriters(prefix, debug, os.Stdout, os.Stderr)
}

func newWithWriters(prefix string, debug bool, out, errOut io.Writer) *Default {
	flags := log.LstdFlags | log.Lmicroseconds
	return &Default{
		debug:  debug,
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(errOut, "", flags),
	}
}

// TeeFile appends every subsequent line to path, creating its directory if needed.
func (l *Default) TeeFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.tee = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	return nil
}

// Close releases the tee file, if any.
func (l *Default) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.tee = nil
	return err
}

func (l *Default) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Default) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *Default) format(level string, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *Default) write(dst *log.Logger, line string) {
	dst.Print(line)
	l.mu.Lock()
	tee := l.tee
	l.mu.Unlock()
	if tee != nil {
		tee.Print(line)
	}
}

func (l *Default) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.write(l.out, l.format("DEBUG", format, args...))
}

func (l *Default) Infof(format string, args ...any) {
	l.write(l.out, l.format("INFO", format, args...))
}

func (l *Default) Warnf(format string, args ...any) {
	l.write(l.err, l.format("WARN", format, args...))
}

func (l *Default) Errorf(format string, args ...any) {
	l.write(l.err, l.format("ERROR", format, args...))
}

type nop struct{}

// Nop returns a logger that discards everything.
func Nop() Logger { return nop{} }

func (nop) DebugEnabled() bool                { return false }
func (nop) SetDebug(bool)                     {}
func (nop) Debugf(format string, args ...any) {}
func (nop) Infof(format string, args ...any)  {}
func (nop) Warnf(format string, args ...any)  {}
func (nop) Errorf(format string, args ...any) {}

// OrNop returns l, or a no-op logger when l is nil. Never returns nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}
