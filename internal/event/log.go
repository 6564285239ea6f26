package event

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the logger shared by all packages.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   false,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	Log.SetLevel(logrus.InfoLevel)
}

// SetLevel changes the log level by name, e.g. "debug" or "warn".
// Unknown names leave the current level untouched.
func SetLevel(name string) {
	if level, err := logrus.ParseLevel(name); err != nil {
		Log.Warnf("log: unknown level %q, keeping %s", name, Log.GetLevel())
	} else {
		Log.SetLevel(level)
	}
}
