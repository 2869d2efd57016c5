package tun

import (
	"context"

	"golang.org/x/sys/unix"
)

const (
	sysProtoControl = 2 // SYSPROTO_CONTROL
	uTunOptIfName   = 2 // UTUN_OPT_IFNAME
	uTunControlName = "com.apple.net.utun_control"
)

// ctlSys is the set of system calls used to acquire a device from the utun kernel control.
type ctlSys interface {
	Socket(domain, typ, proto int) (int, error)
	CloseOnExec(fd int)
	IoctlCtlInfo(fd int, info *unix.CtlInfo) error
	Connect(fd int, sa unix.Sockaddr) error
	GetsockoptString(fd, level, opt int) (string, error)
	SetNonblock(fd int, nonblocking bool) error
	Close(fd int) error
}

type unixCtlSys struct{}

func (unixCtlSys) Socket(domain, typ, proto int) (int, error) {
	return unix.Socket(domain, typ, proto)
}

func (unixCtlSys) CloseOnExec(fd int) {
	unix.CloseOnExec(fd)
}

func (unixCtlSys) IoctlCtlInfo(fd int, info *unix.CtlInfo) error {
	return unix.IoctlCtlInfo(fd, info)
}

func (unixCtlSys) Connect(fd int, sa unix.Sockaddr) error {
	return unix.Connect(fd, sa)
}

func (unixCtlSys) GetsockoptString(fd, level, opt int) (string, error) {
	return unix.GetsockoptString(fd, level, opt)
}

func (unixCtlSys) SetNonblock(fd int, nonblocking bool) error {
	return unix.SetNonblock(fd, nonblocking)
}

func (unixCtlSys) Close(fd int) error {
	return unix.Close(fd)
}

type kernelControlAcquirer struct {
	sys ctlSys
}

// NewAcquirer returns the Acquirer that uses the utun kernel control.
func NewAcquirer() Acquirer {
	return &kernelControlAcquirer{sys: unixCtlSys{}}
}

// Acquire connects a kernel control socket to the utun control. The hint must be empty or
// on the form utun<N>. Both "" and "utun0" let the OS choose the unit.
func (a *kernelControlAcquirer) Acquire(ctx context.Context, hint string) (dev *Device, err error) {
	unit, err := parseUnitHint(hint)
	if err != nil {
		return nil, err
	}

	fd, err := a.sys.Socket(unix.AF_SYSTEM, unix.SOCK_DGRAM, sysProtoControl)
	if err != nil {
		return nil, syscallFailed(ctx, "socket SYSPROTO_CONTROL", err)
	}
	a.sys.CloseOnExec(fd)
	defer func() {
		if err != nil {
			_ = a.sys.Close(fd)
		}
	}()

	info := &unix.CtlInfo{}
	copy(info.Name[:], uTunControlName)
	if err = a.sys.IoctlCtlInfo(fd, info); err != nil {
		return nil, syscallFailed(ctx, "ioctl CTLIOCGINFO "+uTunControlName, err)
	}

	if err = a.sys.Connect(fd, &unix.SockaddrCtl{ID: info.Id, Unit: unit}); err != nil {
		return nil, syscallFailed(ctx, "connect", err)
	}

	ifName, err := a.sys.GetsockoptString(fd, sysProtoControl, uTunOptIfName)
	if err != nil {
		return nil, syscallFailed(ctx, "getsockopt UTUN_OPT_IFNAME", err)
	}
	name, err := resolvedName(ifName)
	if err != nil {
		return nil, err
	}

	if err = a.sys.SetNonblock(fd, true); err != nil {
		return nil, syscallFailed(ctx, "set non-blocking", err)
	}
	return newDevice(fd, name, name.String()), nil
}
