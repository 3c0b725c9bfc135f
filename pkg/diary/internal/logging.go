package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logWriter io.Writer = os.Stdout

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Must be called before the
// first logger is requested to take effect.
func SetLogPath(path string) {
	logPath = path
}

// SetLogWriter replaces the destination of both loggers. Used by tests and by
// hosts that already own a log sink.
func SetLogWriter(w io.Writer) {
	setupOnce.Do(func() {})
	logWriter = w
	logger = nil
	internalLogger = nil
	loggerOnce = sync.Once{}
	internalLoggerOnce = sync.Once{}
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// console only
			return
		}

		logFile = f
		logWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	setup()
	return slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used by the widgets themselves. It is
// kept separate so hosts can silence widget chatter without losing their own logs.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLogger = newJSONLogger(internalLevelVar)
	})
	return internalLogger
}

// ComponentLogger is the internal logger tagged with a component name.
func ComponentLogger(component string) *slog.Logger {
	return GetInternalLogger().With("component", component)
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLogLevel maps "debug", "info", "warn"/"warning" and "error" to slog
// levels. Anything else is Info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	levelVar.Set(ParseLogLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
