package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

//Log is the application-wide logger instance.
var Log *logrus.Logger

//Init configures the global logger. Called once at startup by the
//binaries. LOG_LEVEL selects the level (default info), LOG_FORMAT=json
//switches to JSON output for log collection.
func Init() {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}
