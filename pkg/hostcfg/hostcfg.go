// Package hostcfg hands the configuration of a tun interface over to the host OS. The tun
// package never configures an interface, this package exists for the tunopen command.
package hostcfg

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/datawire/dlib/dexec"
)

// Peer returns the address of the given CIDR with the lowest bit flipped. It's used as the
// remote end of a point-to-point interface and as the target of a ping.
func Peer(cidr string) (net.IP, error) {
	ip, _, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}
	if ip4 := ip.To4(); ip4 != nil {
		ip = ip4
	}
	peer := make(net.IP, len(ip))
	copy(peer, ip)
	peer[len(peer)-1] ^= 0x01
	return peer, nil
}

// Configure adds the given CIDR to the named interface and brings the interface up.
func Configure(ctx context.Context, name, cidr string) error {
	if err := addAddress(ctx, name, cidr); err != nil {
		return fmt.Errorf("failed to add address %s to %s: %w", cidr, name, err)
	}
	if err := up(ctx, name); err != nil {
		return fmt.Errorf("failed to bring %s up: %w", name, err)
	}
	return nil
}

// Ping sends count pings to addr, one per second, using the host's ping command.
func Ping(ctx context.Context, addr net.IP, count int) error {
	cmd, args := pingCommand(addr, count)
	return dexec.CommandContext(ctx, cmd, args...).Run()
}

func pingCommand(addr net.IP, count int) (string, []string) {
	cmd := "ping"
	if addr.To4() == nil {
		cmd = "ping6"
	}
	return cmd, []string{"-c", strconv.Itoa(count), "-i", "1", addr.String()}
}

// Show returns a human readable dump of the addresses and routes of the named interface.
func Show(ctx context.Context, name string) (string, error) {
	return show(ctx, name)
}
