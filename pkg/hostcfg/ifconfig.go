package hostcfg

import (
	"net"
	"strconv"
)

// ifconfigAddressArgs returns the ifconfig arguments that add cidr to the named interface.
// A utun interface is point-to-point so an IPv4 address needs a destination, the peer.
func ifconfigAddressArgs(name, cidr string) ([]string, error) {
	ip, ipNet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}
	if ip4 := ip.To4(); ip4 != nil {
		peer, err := Peer(cidr)
		if err != nil {
			return nil, err
		}
		return []string{name, "inet", ip4.String(), peer.String(), "netmask", net.IP(ipNet.Mask).String()}, nil
	}
	ones, _ := ipNet.Mask.Size()
	return []string{name, "inet6", ip.String(), "prefixlen", strconv.Itoa(ones)}, nil
}
