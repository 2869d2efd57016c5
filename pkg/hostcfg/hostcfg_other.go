//go:build !linux && !darwin

package hostcfg

import (
	"context"
	"errors"
)

var errUnsupported = errors.New("interface configuration is not supported on this platform")

func addAddress(context.Context, string, string) error {
	return errUnsupported
}

func up(context.Context, string) error {
	return errUnsupported
}

func show(context.Context, string) (string, error) {
	return "", errUnsupported
}
