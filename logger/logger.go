package logger

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Raise the log level when the server runs in debug mode.
func EnableDebug() {
	Log.SetLevel(logrus.DebugLevel)
}
