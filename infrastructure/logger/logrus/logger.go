// ABOUTME: Logrus implementation of the Logger interface
// ABOUTME: Writes the diagnostic stream to stderr so stdout stays pure JSON

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using sirupsen/logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a logger writing text-formatted entries to stderr.
func NewLogrusLogger() *LogrusLogger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &LogrusLogger{log: log}
}

// SetLevel adjusts the minimum level from a string ("debug", "info", ...).
// Unknown values leave the level at info.
func (l *LogrusLogger) SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		l.log.SetLevel(logrus.InfoLevel)
		return
	}
	l.log.SetLevel(parsed)
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
