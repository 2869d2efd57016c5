package tun

import (
	"strings"
	"syscall"
)

// NameCapacity is the size of the buffer that the kernel uses for an interface name,
// including the terminating NUL. It is the same on Linux and macOS (IFNAMSIZ).
const NameCapacity = 16

// Name is the name that the OS assigned to a tun interface, e.g. "tun0" or "utun3".
// A Name always fits in NameCapacity bytes including a terminating NUL.
type Name struct {
	s string
}

// NewName validates s and returns it as a Name.
func NewName(s string) (Name, error) {
	if len(s) >= NameCapacity {
		return Name{}, Validation.Newf("name", "%q is %d bytes, must be less than %d: %w", s, len(s), NameCapacity, syscall.ENAMETOOLONG)
	}
	if strings.IndexByte(s, 0) >= 0 {
		return Name{}, Validation.Newf("name", "%q contains a NUL byte: %w", s, syscall.EINVAL)
	}
	return Name{s: s}, nil
}

// resolvedName converts a name returned by the kernel into a Name. The kernel name may
// be NUL terminated.
func resolvedName(s string) (Name, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return Name{}, Acquisition.New("name", "kernel returned an empty interface name")
	}
	return NewName(s)
}

func (n Name) String() string {
	return n.s
}

// IsZero returns true if this Name was never assigned.
func (n Name) IsZero() bool {
	return n.s == ""
}

// Bytes returns the name as a NUL terminated, fixed size buffer.
func (n Name) Bytes() (b [NameCapacity]byte) {
	copy(b[:], n.s)
	return b
}

