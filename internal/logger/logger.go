package logger

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	once sync.Once
	mu   sync.Mutex
	sink *os.File
)

// Init opens the log file the session writes to. The TUI owns the
// terminal, so diagnostics cannot go to stdout. Before Init (or after a
// failed Init) every log call is a no-op.
func Init(path string) error {
	var initErr error
	once.Do(func() {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			initErr = fmt.Errorf("failed to open log file: %w", err)
			return
		}
		sink = f
	})
	return initErr
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.Close()
		sink = nil
	}
}

func Info(message string) {
	writeLog("INFO", message)
}

func Error(message string) {
	writeLog("ERROR", message)
}

func Debug(message string) {
	writeLog("DEBUG", message)
}

func writeLog(prefix, message string) {
	mu.Lock()
	defer mu.Unlock()
	if sink == nil {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(sink, "[%s] %s %s\n", timestamp, prefix, message)
}

// LogWithErr logs message as info when err is nil and as an error with
// the cause attached otherwise.
func LogWithErr(message string, err error) {
	if err == nil {
		Info(message)
		return
	}
	Error(fmt.Sprintf("%s: %v", message, err))
}
