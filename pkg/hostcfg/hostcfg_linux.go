package hostcfg

import (
	"context"
	"fmt"
	"strings"

	"github.com/vishvananda/netlink"
)

func addAddress(_ context.Context, name, cidr string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return err
	}
	addr, err := netlink.ParseAddr(cidr)
	if err != nil {
		return err
	}
	return netlink.AddrAdd(link, addr)
}

func up(_ context.Context, name string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return err
	}
	return netlink.LinkSetUp(link)
}

func show(_ context.Context, name string) (string, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return "", err
	}
	addrs, err := netlink.AddrList(link, netlink.FAMILY_ALL)
	if err != nil {
		return "", err
	}
	routes, err := netlink.RouteList(link, netlink.FAMILY_ALL)
	if err != nil {
		return "", err
	}

	attrs := link.Attrs()
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%s: <%s> mtu %d", attrs.Name, attrs.Flags, attrs.MTU)
	for _, addr := range addrs {
		fmt.Fprintf(&sb, "\n    addr %s", addr.IPNet)
	}
	for _, route := range routes {
		fmt.Fprintf(&sb, "\n    route %s", route)
	}
	return sb.String(), nil
}
