package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger provides centralized logging for the entire application
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	file   *os.File
}

var globalLogger *Logger

// init creates the global logger writing to stderr so stdout stays free for
// rendered output
func init() {
	globalLogger = newLogger(os.Stderr, nil)
}

func newLogger(w io.Writer, file *os.File) *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	if globalLogger != nil {
		level.Set(globalLogger.level.Level())
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   slog.TimeKey,
					Value: slog.StringValue(a.Value.Time().Format("2006/01/02 15:04:05.000000")),
				}
			}
			return a
		},
	})
	return &Logger{
		logger: slog.New(handler),
		level:  level,
		file:   file,
	}
}

// SetFileOutput configures the logger to append to the specified file
func SetFileOutput(filename string) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	// Close existing file if it's not stderr
	Close()
	globalLogger = newLogger(file, file)
	return nil
}

// SetOutput redirects logging to w. Used by tests to capture output.
func SetOutput(w io.Writer) {
	Close()
	globalLogger = newLogger(w, nil)
}

// SetLevel changes the minimum level that is written
func SetLevel(level slog.Level) {
	if globalLogger != nil {
		globalLogger.level.Set(level)
	}
}

// Standard logging methods
func Debug(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Error(msg, args...)
	}
}

// Close closes the log file, if any, and sends later messages to stderr
func Close() {
	if globalLogger != nil && globalLogger.file != nil {
		globalLogger.file.Close()
		globalLogger = newLogger(os.Stderr, nil)
	}
}
