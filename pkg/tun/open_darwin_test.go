package tun

import (
	"net"
	"strconv"
	"strings"
)

const defaultNamePattern = `^utun\d+$`

func (s *openSuite) interfaceExists(name string) {
	_, err := net.InterfaceByName(name)
	s.Require().NoError(err)
}

func (s *openSuite) interfaceGone(name string) {
	_, err := net.InterfaceByName(name)
	s.Error(err, "%s still exists", name)
}

func (s *openSuite) TestUnitZeroLetsOSChoose() {
	dev := s.open("utun0")
	s.Regexp(defaultNamePattern, dev.Name().String())
}

func (s *openSuite) TestUnitHint() {
	// Pick a unit well above anything the OS assigns on its own.
	dev := s.open("")
	n, err := strconv.Atoi(strings.TrimPrefix(dev.Name().String(), "utun"))
	s.Require().NoError(err)
	hint := "utun" + strconv.Itoa(n+100)
	exact := s.open(hint)
	s.Equal(hint, exact.Name().String())
}
