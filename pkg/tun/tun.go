// Package tun creates tun devices, virtual point-to-point network interfaces that exchange
// raw IP packets with a user space process.
//
// On Linux the device is acquired from the /dev/net/tun character device and on macOS
// from the utun kernel control socket. In both cases every packet read from or written to
// the device is preceded by a PrefixLen byte header that is described by a Framing.
package tun

import (
	"context"
	"os"
)

// Device is an open tun device. The embedded *os.File is used for reading and writing
// frames. The Device is owned by the caller who must Close it.
type Device struct {
	*os.File
	name Name
}

// Acquirer acquires tun devices. The implementation is selected at build time.
type Acquirer interface {
	// Acquire opens a new tun device. The hint is the requested interface name. An empty
	// hint lets the OS choose.
	Acquire(ctx context.Context, hint string) (*Device, error)
}

// Open creates a new tun device using the acquirer for this platform.
func Open(ctx context.Context, hint string) (*Device, error) {
	return NewAcquirer().Acquire(ctx, hint)
}

func newDevice(fd int, name Name, path string) *Device {
	return &Device{File: os.NewFile(uintptr(fd), path), name: name}
}

// Name returns the name that the OS assigned to this device, e.g. "tun0".
func (d *Device) Name() Name {
	return d.name
}
