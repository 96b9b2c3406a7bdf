package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	verboseFlag bool
	log         = newLogger()
)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger
}

// configureLogger applies the --verbose flag after cobra has parsed it.
func configureLogger() {
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// getLogger returns the logrus.Logger for use with packages that expect it
func getLogger() *logrus.Logger {
	return log
}
