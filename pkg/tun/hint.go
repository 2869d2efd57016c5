package tun

import (
	"math"
	"strings"
	"syscall"
)

// UnitPrefix is the literal that every utun interface name starts with.
const UnitPrefix = "utun"

// parseUnitHint parses a kernel-control style hint on the form utun<N> and returns the unit
// selector to use in the sockaddr_ctl. The kernel creates utun<u-1> for a unit u, and picks
// the next free unit when u is zero. An empty hint and "utun0" both yield zero.
func parseUnitHint(hint string) (uint32, error) {
	if hint == "" {
		return 0, nil
	}
	digits, ok := strings.CutPrefix(hint, UnitPrefix)
	if !ok || digits == "" {
		return 0, Validation.Newf("parse hint", "%q does not match %s<N>: %w", hint, UnitPrefix, syscall.EINVAL)
	}
	if digits == "0" {
		return 0, nil
	}
	if digits[0] == '0' {
		return 0, Validation.Newf("parse hint", "%q has a leading zero: %w", hint, syscall.EINVAL)
	}
	var n uint64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, Validation.Newf("parse hint", "%q does not match %s<N>: %w", hint, UnitPrefix, syscall.EINVAL)
		}
		n = n*10 + uint64(c-'0')
		if n >= math.MaxUint32 {
			return 0, Validation.Newf("parse hint", "%q is out of range: %w", hint, syscall.EINVAL)
		}
	}
	return uint32(n) + 1, nil
}

// validateDeviceHint checks that a character-device style hint fits both the name buffer
// and the kernel's own interface name limit.
func validateDeviceHint(hint string, ifNameSize int) error {
	if len(hint) >= NameCapacity || len(hint) >= ifNameSize {
		return Validation.Newf("parse hint", "%q is %d bytes, must be less than %d: %w",
			hint, len(hint), min(NameCapacity, ifNameSize), syscall.ENAMETOOLONG)
	}
	if strings.IndexByte(hint, 0) >= 0 {
		return Validation.Newf("parse hint", "%q contains a NUL byte: %w", hint, syscall.EINVAL)
	}
	return nil
}
