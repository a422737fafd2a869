package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "SORTABLE_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
	loaded  bool
)

// Init directs debug logging to the file at path, creating its directory
// if needed. An empty path disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	loaded = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	closeLocked()
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	logFile = f
	logger = newLogger(f)
	return nil
}

// SetOutput directs debug logging to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	loaded = true
	if w != nil {
		logger = newLogger(w)
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "sortable",
	})
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	return logger != nil
}

// loadLocked reads EnvVar the first time logging is used.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	_ = initLocked(os.Getenv(EnvVar))
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	if logger == nil {
		return
	}
	logger.Debugf(format, args...)
}
