package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init, writing info
// and above as text to stderr.
var Log = logrus.New()

// Init configures Log from LOG_LEVEL (default "info", forced to "debug" when
// debug is set) and LOG_FORMAT ("json" or "text").
func Init(debug bool) {
	configure(Log, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), debug, os.Stdout)
}

func configure(l *logrus.Logger, levelName, format string, debug bool, out io.Writer) {
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	if debug && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
}
