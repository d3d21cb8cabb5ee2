package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. level is a logrus level name; unknown or
// empty values fall back to info. LOG_LEVEL in the environment overrides the
// argument, so deployments can raise verbosity without editing config files.
func New(level string) *logrus.Logger {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
