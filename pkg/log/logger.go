// Package log sets up the logrus backed dlog logger used by the tunopen command.
package log

import (
	"context"
	"io"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05.0000"

// MakeBaseLogger returns a context with a dlog.Logger that writes to out using the
// Formatter. The logger also becomes the dlog fallback logger so that code that logs
// using a context without a logger ends up in the same place. An invalid logLevel is
// reported on out and replaced by the default level.
func MakeBaseLogger(ctx context.Context, out io.Writer, logLevel string) context.Context {
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(out)
	logrusLogger.SetFormatter(NewFormatter(timestampFormat))
	SetLogrusLevel(logrusLogger, logLevel)

	logger := dlog.WrapLogrus(logrusLogger)
	dlog.SetFallbackLogger(logger)
	return dlog.WithLogger(ctx, logger)
}
