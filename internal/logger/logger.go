package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu   sync.Mutex
	base *slog.Logger
)

// Init configures the process-wide logger. Development gets a readable
// text handler at debug level; anything else logs JSON at info.
func Init(env string) {
	mu.Lock()
	defer mu.Unlock()

	var handler slog.Handler
	switch env {
	case "development":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	base = slog.New(handler)
	slog.SetDefault(base)
}

func GetLogger() *slog.Logger {
	mu.Lock()
	l := base
	mu.Unlock()
	if l == nil {
		Init("development")
		return GetLogger()
	}
	return l
}

func Debug(msg string, args ...any) { GetLogger().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetLogger().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetLogger().Warn(msg, args...) }
func Error(msg string, args ...any) { GetLogger().Error(msg, args...) }

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// WithError returns a logger carrying the error as a field.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
