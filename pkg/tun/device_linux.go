package tun

import (
	"context"

	"golang.org/x/sys/unix"
)

const devicePath = "/dev/net/tun"

// devSys is the set of system calls used to acquire a device from the tun driver.
type devSys interface {
	Open(path string, mode int, perm uint32) (int, error)
	IoctlIfreq(fd int, request uint, ifr *unix.Ifreq) error
	SetNonblock(fd int, nonblocking bool) error
	Close(fd int) error
}

type unixDevSys struct{}

func (unixDevSys) Open(path string, mode int, perm uint32) (int, error) {
	return unix.Open(path, mode, perm)
}

func (unixDevSys) IoctlIfreq(fd int, request uint, ifr *unix.Ifreq) error {
	return unix.IoctlIfreq(fd, request, ifr)
}

func (unixDevSys) SetNonblock(fd int, nonblocking bool) error {
	return unix.SetNonblock(fd, nonblocking)
}

func (unixDevSys) Close(fd int) error {
	return unix.Close(fd)
}

type charDeviceAcquirer struct {
	sys devSys
}

// NewAcquirer returns the Acquirer that uses the universal TUN/TAP driver.
func NewAcquirer() Acquirer {
	return &charDeviceAcquirer{sys: unixDevSys{}}
}

// Acquire opens the tun driver and configures it as a tun device. The hint is passed
// verbatim to the kernel so a template such as "tun%d" is valid.
func (a *charDeviceAcquirer) Acquire(ctx context.Context, hint string) (dev *Device, err error) {
	// https://www.kernel.org/doc/html/latest/networking/tuntap.html
	if err = validateDeviceHint(hint, unix.IFNAMSIZ); err != nil {
		return nil, err
	}
	ifr, err := unix.NewIfreq(hint)
	if err != nil {
		return nil, Validation.New("parse hint", err)
	}

	fd, err := a.sys.Open(devicePath, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, syscallFailed(ctx, "open "+devicePath, err)
	}
	defer func() {
		if err != nil {
			_ = a.sys.Close(fd)
		}
	}()

	// No IFF_NO_PI. The kernel prepends a struct tun_pi to each packet.
	ifr.SetUint16(unix.IFF_TUN)
	if err = a.sys.IoctlIfreq(fd, unix.TUNSETIFF, ifr); err != nil {
		return nil, syscallFailed(ctx, "ioctl TUNSETIFF", err)
	}

	name, err := resolvedName(ifr.Name())
	if err != nil {
		return nil, err
	}

	// Set non-blocking so that a read doesn't hang when the file is closed. A read
	// will still wait for data to arrive.
	//
	// See: https://github.com/golang/go/issues/30426#issuecomment-470044803
	if err = a.sys.SetNonblock(fd, true); err != nil {
		return nil, syscallFailed(ctx, "set non-blocking", err)
	}
	return newDevice(fd, name, devicePath), nil
}
