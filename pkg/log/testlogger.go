package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/datawire/dlib/dlog"
)

// tbLogger is a dlog.Logger that writes to a testing.TB.
type tbLogger struct {
	testing.TB
	level  dlog.LogLevel
	fields map[string]any
}

// NewTestLogger returns a dlog.Logger that logs everything up to and including level using t.Log.
func NewTestLogger(t testing.TB, level dlog.LogLevel) dlog.Logger {
	return &tbLogger{TB: t, level: level}
}

// WithTestLogger returns a context derived from context.Background() that uses a NewTestLogger.
func WithTestLogger(t testing.TB, level dlog.LogLevel) context.Context {
	return dlog.WithLogger(context.Background(), NewTestLogger(t, level))
}

func (l *tbLogger) StdLogger(_ dlog.LogLevel) *log.Logger {
	return log.New(io.Discard, "", 0)
}

func (l *tbLogger) WithField(key string, value any) dlog.Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &tbLogger{TB: l.TB, level: l.level, fields: fields}
}

func (l *tbLogger) Log(level dlog.LogLevel, msg string) {
	if level > l.level {
		return
	}
	l.Helper()
	var sb strings.Builder
	sb.WriteString(time.Now().Format("15:04:05.0000"))
	sb.WriteByte(' ')
	sb.WriteString(msg)

	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%#v", k, l.fields[k])
		}
	}
	l.TB.Log(sb.String())
}
