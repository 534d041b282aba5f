package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger  *logrus.Logger
	WarnLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

// Plain stderr/stdout loggers until InitLoggers installs rotation, so
// packages can log safely in tests without touching the filesystem.
func init() {
	InfoLogger = logrus.New()
	WarnLogger = logrus.New()
	ErrorLogger = logrus.New()
	ErrorLogger.SetOutput(os.Stderr)
}

// InitLoggers sets up the global loggers. Info and warnings go to
// logs/info.log, errors to logs/error.log, both mirrored to stdout/stderr
// and rotated by lumberjack.
func InitLoggers() {
	infoRotator := &lumberjack.Logger{
		Filename:   "logs/info.log",
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	errorRotator := &lumberjack.Logger{
		Filename:   "logs/error.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	InfoLogger = logrus.New()
	InfoLogger.SetLevel(logrus.InfoLevel)
	InfoLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	InfoLogger.SetOutput(io.MultiWriter(os.Stdout, infoRotator))

	WarnLogger = logrus.New()
	WarnLogger.SetLevel(logrus.WarnLevel)
	WarnLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	WarnLogger.SetOutput(io.MultiWriter(os.Stdout, infoRotator))

	ErrorLogger = logrus.New()
	ErrorLogger.SetLevel(logrus.ErrorLevel)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ErrorLogger.SetOutput(io.MultiWriter(os.Stderr, errorRotator))
}
