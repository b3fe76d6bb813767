// Package logger holds the process-wide structured logger used by the
// memtest command. Sessions receive L and add their own session attribute.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables it.
var L = slog.New(slog.DiscardHandler)

var (
	file *os.File
	path string
)

const (
	logPrefix        = "memtest-"
	logSuffix        = ".log"
	dateLayout       = "2006-01-02"
	defaultRetention = 30 * 24 * time.Hour
)

// Options configures Init.
type Options struct {
	Enabled   bool          // false discards all records
	LogDir    string        // default ~/.memtest/logs
	Level     slog.Level    // zero value is LevelInfo
	Stderr    bool          // text records on stderr instead of a file
	Retention time.Duration // dated files older than this are removed; default 30 days
}

// Init replaces L according to opts, closing any file a previous Init opened.
func Init(opts Options) error {
	Close()
	if !opts.Enabled {
		return nil
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.Stderr {
		L = slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
		return nil
	}

	dir, err := logDir(opts.LogDir)
	if err != nil {
		return err
	}
	retention := opts.Retention
	if retention <= 0 {
		retention = defaultRetention
	}
	pruneLogs(dir, time.Now().Add(-retention))

	name := filepath.Join(dir, fileName(time.Now()))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	file, path = f, name
	L = slog.New(slog.NewJSONHandler(f, handlerOpts))
	return nil
}

// Path returns the log file in use, or "" when logging to stderr or nowhere.
func Path() string { return path }

// Close flushes and closes the log file and returns L to discarding.
func Close() {
	L = slog.New(slog.DiscardHandler)
	if file == nil {
		return
	}
	_ = file.Sync()
	_ = file.Close()
	file, path = nil, ""
}

func logDir(dir string) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".memtest", "logs")
	}
	return dir, os.MkdirAll(dir, 0o755)
}

func fileName(t time.Time) string {
	return logPrefix + t.Format(dateLayout) + logSuffix
}

// pruneLogs removes dated log files from dir whose date is before cutoff.
// Failures are ignored; a stale log file is harmless.
func pruneLogs(dir string, cutoff time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		stem, ok := strings.CutPrefix(e.Name(), logPrefix)
		if !ok {
			continue
		}
		stem, ok = strings.CutSuffix(stem, logSuffix)
		if !ok {
			continue
		}
		day, err := time.Parse(dateLayout, stem)
		if err != nil || !day.Before(cutoff) {
			continue
		}
		_ = os.Remove(filepath.Join(dir, e.Name()))
	}
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
