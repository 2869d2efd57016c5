package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunopen/tunopen/pkg/tun"
)

func TestData_views(t *testing.T) {
	d := NewData(8)
	require.Len(t, d.Raw(), PrefixLen+8)
	require.Len(t, d.Buf(), 8)

	d.SetPrefix(tun.EtherTypeFraming.IPv6Prefix())
	d.Buf()[0] = 0x60
	assert.Equal(t, byte(0x60), d.Raw()[PrefixLen])
	assert.True(t, tun.EtherTypeFraming.IsIPv6(d.Raw()))
	assert.Equal(t, tun.EtherTypeFraming.IPv6Prefix(), d.Prefix())
}

func TestData_Resize(t *testing.T) {
	d := NewData(4)
	d.SetPrefix(tun.AddressFamilyFraming.IPv4Prefix())
	copy(d.Buf(), []byte{1, 2, 3, 4})

	d.Resize(2)
	assert.Equal(t, []byte{1, 2}, d.Buf())
	assert.Len(t, d.Raw(), PrefixLen+2)

	d.Resize(4)
	assert.Equal(t, []byte{1, 2, 3, 4}, d.Buf(), "shrinking keeps the capacity")

	d.Resize(100)
	assert.Len(t, d.Buf(), 100)
	assert.Equal(t, []byte{1, 2, 3, 4}, d.Buf()[:4])
	assert.True(t, tun.AddressFamilyFraming.IsIPv4(d.Raw()))
}

func TestData_Copy(t *testing.T) {
	d := NewData(4)
	d.SetPrefix(tun.EtherTypeFraming.IPv4Prefix())
	copy(d.Buf(), []byte{0x45, 2, 3, 4})

	c := d.Copy(2)
	assert.Equal(t, []byte{0x45, 2}, c.Buf())
	assert.Equal(t, d.Prefix(), c.Prefix())

	c.Buf()[0] = 0
	assert.Equal(t, byte(0x45), d.Buf()[0])
}

func TestPool(t *testing.T) {
	p := NewPool(1280)
	d := p.Get(100)
	assert.Len(t, d.Buf(), 100)
	p.Put(d)

	d = DataPool.Get(DataPool.MTU)
	assert.Len(t, d.Buf(), defaultMTU)
	DataPool.Put(d)
}
