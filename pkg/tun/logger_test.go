package tun

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/datawire/dlib/dlog"
)

// recorder is a dlog.Logger that keeps the messages logged at error level.
type recorder struct {
	sync.Mutex
	errors []string
}

func (r *recorder) Helper() {
}

func (r *recorder) WithField(_ string, _ any) dlog.Logger {
	return r
}

func (r *recorder) StdLogger(_ dlog.LogLevel) *log.Logger {
	return log.New(io.Discard, "", 0)
}

func (r *recorder) Log(level dlog.LogLevel, msg string) {
	if level != dlog.LogLevelError {
		return
	}
	r.Lock()
	r.errors = append(r.errors, msg)
	r.Unlock()
}

func (r *recorder) logged() []string {
	r.Lock()
	defer r.Unlock()
	return append([]string(nil), r.errors...)
}

func withRecorder(ctx context.Context) (context.Context, *recorder) {
	r := &recorder{}
	return dlog.WithLogger(ctx, r), r
}
