package tun

import (
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

const defaultNamePattern = `^tun\d+$`

func (s *openSuite) interfaceExists(name string) {
	link, err := netlink.LinkByName(name)
	s.Require().NoError(err)
	s.Equal("tuntap", link.Type())
}

func (s *openSuite) interfaceGone(name string) {
	_, err := netlink.LinkByName(name)
	s.Error(err, "%s still exists", name)
}

func (s *openSuite) TestHint() {
	dev := s.open("tunopen%d")
	s.Regexp(`^tunopen\d+$`, dev.Name().String())
	s.interfaceExists(dev.Name().String())
}

func (s *openSuite) TestHintTooLong() {
	_, err := Open(s.ctx, "toolongname1234567")
	s.ErrorIs(err, unix.ENAMETOOLONG)
	s.Equal(Validation, GetCategory(err))
}
