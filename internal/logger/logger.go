// Package logger builds the dashboard's structured logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a custom JSON logger at the given level. Output is
// discarded when env is "test".
func NewLogger(level, env string) logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if env == "test" {
		logger.SetOutput(io.Discard)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	jsonFormatter := logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyMsg:   "message",
			logrus.FieldKeyLevel: "level",
		},
	}
	logger.SetFormatter(&jsonFormatter)

	return logger
}

// Discard returns a logger that drops everything, for tests.
func Discard() logrus.FieldLogger {
	return NewLogger("panic", "test")
}
