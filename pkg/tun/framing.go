package tun

import (
	"errors"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// PrefixLen is the length of the header that precedes every packet read from or written to
// a tun Device.
const PrefixLen = 4

// Prefix is the header that precedes every packet read from or written to a tun Device.
type Prefix [PrefixLen]byte

// ErrUnknownProtocol is returned when a prefix can't be determined for a packet.
var ErrUnknownProtocol = errors.New("unable to determine IP version from packet")

// Framing describes how a tun device tags each packet with its protocol. Only the bytes
// from tagAt up to PrefixLen carry the tag, the leading bytes are flags that the
// classification ignores.
type Framing struct {
	name  string
	tagAt int
	ipv4  Prefix
	ipv6  Prefix
}

const (
	afInet       = 2  // AF_INET
	afInet6Apple = 30 // AF_INET6 on macOS, Linux uses 10

	etherTypeIPv4 = 0x0800
	etherTypeIPv6 = 0x86dd
)

var (
	// AddressFamilyFraming is used by the macOS utun socket. The last byte of the
	// prefix is the address family of the packet.
	AddressFamilyFraming = Framing{
		name:  "address-family",
		tagAt: 3,
		ipv4:  Prefix{0, 0, 0, afInet},
		ipv6:  Prefix{0, 0, 0, afInet6Apple},
	}

	// EtherTypeFraming is the struct tun_pi used by the Linux tun driver when the
	// device is created without IFF_NO_PI. The last two bytes are the ethernet
	// protocol type in network byte order.
	EtherTypeFraming = Framing{
		name:  "ethertype",
		tagAt: 2,
		ipv4:  Prefix{0, 0, etherTypeIPv4 >> 8, etherTypeIPv4 & 0xff},
		ipv6:  Prefix{0, 0, etherTypeIPv6 >> 8, etherTypeIPv6 & 0xff},
	}
)

func (f Framing) String() string {
	return f.name
}

// IPv4Prefix returns the prefix that identifies an IPv4 packet.
func (f Framing) IPv4Prefix() Prefix {
	return f.ipv4
}

// IPv6Prefix returns the prefix that identifies an IPv6 packet.
func (f Framing) IPv6Prefix() Prefix {
	return f.ipv6
}

// IsIPv4 returns true if the prefix of the given frame identifies an IPv4 packet.
func (f Framing) IsIPv4(frame []byte) bool {
	return f.matches(frame, f.ipv4)
}

// IsIPv6 returns true if the prefix of the given frame identifies an IPv6 packet.
func (f Framing) IsIPv6(frame []byte) bool {
	return f.matches(frame, f.ipv6)
}

func (f Framing) matches(frame []byte, p Prefix) bool {
	if f.tagAt == 0 || len(frame) < PrefixLen {
		return false
	}
	for i := f.tagAt; i < PrefixLen; i++ {
		if frame[i] != p[i] {
			return false
		}
	}
	return true
}

// PrefixFor returns the prefix to use when writing the given IP packet, based on the
// version found in its first nibble.
func (f Framing) PrefixFor(packet []byte) (Prefix, error) {
	if len(packet) > 0 {
		switch packet[0] >> 4 {
		case ipv4.Version:
			return f.ipv4, nil
		case ipv6.Version:
			return f.ipv6, nil
		}
	}
	return Prefix{}, ErrUnknownProtocol
}

// Frame returns a new slice that holds the prefix for the given IP packet followed by the packet.
func (f Framing) Frame(packet []byte) ([]byte, error) {
	p, err := f.PrefixFor(packet)
	if err != nil {
		return nil, err
	}
	frame := make([]byte, PrefixLen+len(packet))
	copy(frame, p[:])
	copy(frame[PrefixLen:], packet)
	return frame, nil
}

// Payload returns the IP packet of a frame, or nil if the frame is too short to hold a prefix.
func Payload(frame []byte) []byte {
	if len(frame) < PrefixLen {
		return nil
	}
	return frame[PrefixLen:]
}

// IsIPv4 returns true if the given frame, read from a tun Device, holds an IPv4 packet.
func IsIPv4(frame []byte) bool {
	return Native.IsIPv4(frame)
}

// IsIPv6 returns true if the given frame, read from a tun Device, holds an IPv6 packet.
func IsIPv6(frame []byte) bool {
	return Native.IsIPv6(frame)
}
