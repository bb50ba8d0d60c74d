package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger
var Log = logrus.New()

// SetupLogger configures the shared logger: daily log file plus stdout
func SetupLogger() error {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", currentTime.Format("2006-01-02")))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	Log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Log.SetLevel(logrus.InfoLevel)

	return nil
}

// Info logs at info level
func Info(format string, v ...interface{}) {
	Log.Infof(format, v...)
}

// Warning logs at warning level
func Warning(format string, v ...interface{}) {
	Log.Warnf(format, v...)
}

// Error logs at error level
func Error(format string, v ...interface{}) {
	Log.Errorf(format, v...)
}
