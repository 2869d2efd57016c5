package tun

import (
	"context"

	"github.com/datawire/dlib/dlog"
)

type diagnosticsKey struct{}

// WithDiagnostics returns a context that enables or disables the logging of failing system
// calls, overriding the default that was chosen with the tunopen_diag build tag.
func WithDiagnostics(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, diagnosticsKey{}, enabled)
}

func diagnosticsEnabled(ctx context.Context) bool {
	if enabled, ok := ctx.Value(diagnosticsKey{}).(bool); ok {
		return enabled
	}
	return diagnostics
}

// syscallFailed returns an Acquisition error for a failing system call. The failure is
// logged first when diagnostics are enabled.
func syscallFailed(ctx context.Context, op string, err error) error {
	if diagnosticsEnabled(ctx) {
		dlog.Errorf(ctx, "%s failed: %v", op, err)
	}
	return Acquisition.New(op, err)
}
