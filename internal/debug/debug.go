package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "BOXTREE_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *zap.Logger
)

// Logger returns the shared debug logger. On first use it opens the file named by
// BOXTREE_DEBUG; if the variable is unset or the file cannot be opened it returns
// a logger that discards everything.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return logger
	}
	logger = zap.NewNop()
	if path := os.Getenv(EnvVar); path != "" {
		if l, err := openLocked(path); err == nil {
			logger = l
		}
	}
	return logger
}

// Init directs debug logging to the specified file path, replacing any earlier
// destination. If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := closeLocked(); err != nil {
		return err
	}
	l, err := openLocked(path)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Close flushes and closes the debug log file. Later calls to Logger start over.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

// openLocked does the actual open work. Caller must hold mu.
func openLocked(path string) (*zap.Logger, error) {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	logFile = f

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(f), zapcore.DebugLevel)
	return zap.New(core), nil
}

func closeLocked() error {
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
