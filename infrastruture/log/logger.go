// Package logger provides prefixed, colored loggers backed by logrus.
package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-guard/config"
	"github.com/beka-birhanu/vinom-guard/service/i"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix must not be empty")
	ErrNilWriter   = errors.New("logger output must not be nil")
)

const timeLayout = "2006/01/02 15:04:05"

var _ i.Logger = &Logger{}

// Logger writes "[PREFIX] [LEVEL] message" lines in a fixed color.
type Logger struct {
	backend *logrus.Logger
}

// New creates a logger that tags every line with prefix and paints it with color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if out == nil {
		return nil, ErrNilWriter
	}

	backend := logrus.New()
	backend.SetOutput(out)
	backend.SetLevel(logrus.DebugLevel)
	backend.SetFormatter(&formatter{prefix: prefix, color: color})

	return &Logger{backend: backend}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.backend.Info(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.backend.Error(msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.backend.Debug(msg)
}

// formatter renders logrus entries in the "[PREFIX] [LEVEL]" layout.
type formatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *formatter) Format(entry *logrus.Entry) ([]byte, error) {
	color := f.color
	if entry.Level <= logrus.ErrorLevel {
		color = config.ColorRed
	}

	line := fmt.Sprintf("%s%s [%s] [%s] %s%s\n",
		color,
		entry.Time.Format(timeLayout),
		f.prefix,
		strings.ToUpper(entry.Level.String()),
		entry.Message,
		config.ColorReset,
	)
	return []byte(line), nil
}
