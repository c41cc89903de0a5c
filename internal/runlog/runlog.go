package runlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Logger wraps a slog.Logger bound to a run log file.
type Logger struct {
	*slog.Logger
	// Path is the log file created for this run.
	Path string

	file *os.File
}

// New creates the log directory if needed, opens a fresh log file named
// after today's date and returns a logger writing to both the file and
// stderr. Multiple runs on the same day get a _1, _2, ... counter
// appended, matching the number of same-day log files already present.
func New(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(logDir, logFileName(logDir, time.Now()))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stderr, file), nil)
	return &Logger{
		Logger: slog.New(handler),
		Path:   path,
		file:   file,
	}, nil
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// logFileName picks translation_run_{date}.log, or with a counter when
// log files for the same date already exist.
func logFileName(logDir string, now time.Time) string {
	dateStr := now.Format("2006-01-02")

	count := 0
	entries, err := os.ReadDir(logDir)
	if err == nil {
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasSuffix(name, ".log") && strings.Contains(name, dateStr) {
				count++
			}
		}
	}

	if count > 0 {
		return fmt.Sprintf("translation_run_%s_%d.log", dateStr, count)
	}
	return fmt.Sprintf("translation_run_%s.log", dateStr)
}
