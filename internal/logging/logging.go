// Package logging configures the logrus logger shared by the entrypoints.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level and destination of log output.
type Options struct {
	Level string
	// File, when set, receives logs through a size-rotated writer instead
	// of stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// New builds a logger from options.
func New(options Options) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level := logrus.InfoLevel
	if options.Level != "" {
		parsed, err := logrus.ParseLevel(options.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)
	logger.SetOutput(writer(options))
	return logger, nil
}

func writer(options Options) io.Writer {
	if options.File == "" {
		return os.Stderr
	}
	maxSize := options.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 5
	}
	maxBackups := options.MaxBackups
	if maxBackups <= 0 {
		maxBackups = 3
	}
	return &lumberjack.Logger{
		Filename:   options.File,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
	}
}
