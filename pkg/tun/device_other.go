//go:build !linux && !darwin

package tun

import (
	"context"
	"runtime"
)

type unsupportedAcquirer struct{}

// NewAcquirer returns an Acquirer that always fails because this platform has no tun support.
func NewAcquirer() Acquirer {
	return unsupportedAcquirer{}
}

func (unsupportedAcquirer) Acquire(context.Context, string) (*Device, error) {
	return nil, Unsupported.Newf("open", "tun devices are not supported on %s", runtime.GOOS)
}
