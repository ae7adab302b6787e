package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const LogFileName = "repoclone.log"

var Log = logrus.New()

var logFilePath = LogFileName

// InitLogger points Log at the given file (LogFileName when empty), appending to it.
func InitLogger(verbose bool, path string) error {
	if path != "" {
		logFilePath = path
	}

	file, err := os.OpenFile(GetLogFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	Log.SetOutput(file)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
		Log.Debugln("Verbose (debug) logging enabled")
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
	return nil
}

// Discard silences Log, for tests that exercise code paths which log.
func Discard() {
	Log.SetOutput(io.Discard)
}

func GetLogFilePath() string {
	path, err := filepath.Abs(logFilePath)
	if err != nil {
		return logFilePath
	}
	return path
}
