// Package logger keeps recent log lines in memory for on-screen display and
// appends them to a file on disk.
package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// DefaultPath is the log file used when none is given, relative to the
// working directory.
const DefaultPath = "logs/dancecube.log"

// DefaultKeep is the number of lines held in memory.
const DefaultKeep = 200

// Logger stores stamped lines in memory and appends them to a file.
type Logger struct {
	mu    sync.Mutex
	lines []string
	keep  int
	path  string
}

// New returns a Logger writing to path. An empty path keeps lines in memory
// only. The file's directory is created if missing.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{lines: make([]string, 0, DefaultKeep), keep: DefaultKeep, path: path}
}

// Log appends a line prefixed with the local time.
func (l *Logger) Log(line string) {
	stamped := "[" + time.Now().Format("15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > l.keep {
		l.lines = l.lines[len(l.lines)-l.keep:]
	}
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of the stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns at most n of the newest lines.
func (l *Logger) Tail(n int) []string {
	lines := l.Lines()
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// Logr returns a structured logger feeding this Logger. Verbosity 1 enables
// V(1) messages.
func (l *Logger) Logr(verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			l.Log(prefix + ": " + args)
			return
		}
		l.Log(args)
	}, funcr.Options{Verbosity: verbosity})
}
