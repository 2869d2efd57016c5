package log

import (
	"github.com/sirupsen/logrus"
)

const defaultLogLevel = logrus.InfoLevel

// SetLogrusLevel sets the log-level of the given logger from logLevelStr. An invalid level
// is reported and replaced by the default level.
func SetLogrusLevel(logrusLogger *logrus.Logger, logLevelStr string) {
	logLevel := defaultLogLevel
	if logLevelStr != "" {
		var err error
		if logLevel, err = logrus.ParseLevel(logLevelStr); err != nil {
			logLevel = defaultLogLevel
			logrusLogger.Errorf("%v, falling back to default %q", err, logLevel)
		}
	}

	if logrusLogger.Level != logLevel {
		logrusLogger.SetLevel(logLevel)
		logrusLogger.SetReportCaller(logLevel >= logrus.TraceLevel)
	}
}
