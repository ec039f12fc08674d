package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a printf-style logger. Every service builds one in main and hands
// it down to use cases and handlers.
type Logger struct {
	entry *logrus.Entry
}

func New() *Logger {
	return NewWithOptions(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("GIN_MODE") == "release")
}

// NewWithOptions builds a logger writing to out. An unparsable level falls
// back to info; json switches to the JSON formatter.
func NewWithOptions(out io.Writer, level string, json bool) *Logger {
	base := logrus.New()
	base.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	if json {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{entry: logrus.NewEntry(base)}
}

// WithField returns a child logger that adds key=value to every line.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}
