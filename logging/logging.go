package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. Debug builds log text at debug level, everything else logs
// JSON lines at info level.
func New(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return logger
	}
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}
