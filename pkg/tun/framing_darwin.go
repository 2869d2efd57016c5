package tun

// Native is the Framing used by tun devices on this platform.
var Native = AddressFamilyFraming
