// Package buffer contains a packet buffer that keeps the tun prefix in front of the IP packet
// so that a frame can be read or written without copying.
package buffer

import (
	"github.com/tunopen/tunopen/pkg/tun"
)

const PrefixLen = tun.PrefixLen

// Data consists of two slices that share the same underlying byte array. The raw data points
// to the beginning of the array and buf points PrefixLen into the array. All packet
// manipulation is done using buf, except reads/writes to the tun device which use raw.
type Data struct {
	buf []byte
	raw []byte
}

func NewData(sz int) *Data {
	raw := make([]byte, PrefixLen+sz)
	return &Data{buf: raw[PrefixLen:], raw: raw}
}

// Buf returns the IP packet.
func (d *Data) Buf() []byte {
	return d.buf
}

// Raw returns the prefix followed by the IP packet. This is the buffer that should be used
// when reading from or writing to the tun.Device.
func (d *Data) Raw() []byte {
	return d.raw
}

// Prefix returns the prefix of this Data.
func (d *Data) Prefix() (p tun.Prefix) {
	copy(p[:], d.raw)
	return p
}

// SetPrefix sets the prefix of this Data.
func (d *Data) SetPrefix(p tun.Prefix) {
	copy(d.raw, p[:])
}

// Copy copies the prefix and n bytes of the packet into a new Data and returns it.
func (d *Data) Copy(n int) *Data {
	c := NewData(n)
	copy(c.raw, d.raw[:PrefixLen+n])
	return c
}

// Resize sets the length of the packet. The prefix and the packet bytes that fit are retained.
func (d *Data) Resize(size int) {
	if size <= cap(d.buf) {
		d.buf = d.buf[:size]
		d.raw = d.raw[:size+PrefixLen]
	} else {
		raw := make([]byte, size+PrefixLen)
		copy(raw, d.raw)
		d.raw = raw
		d.buf = raw[PrefixLen:]
	}
}
