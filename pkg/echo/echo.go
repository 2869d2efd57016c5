// Package echo contains a packet loop that classifies the frames read from a tun device and
// answers ICMPv6 echo requests.
package echo

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/datawire/dlib/dlog"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv6"

	"github.com/tunopen/tunopen/pkg/tun"
	"github.com/tunopen/tunopen/pkg/tun/buffer"
)

const protocolICMPv6 = 58

// Responder reads frames from a tun device and logs a description of each frame. Unless it
// only classifies, it also writes an echo reply for each ICMPv6 echo request.
type Responder struct {
	// Framing of the device.
	Framing tun.Framing

	// Replies is the number of echo replies after which Run returns. Zero means that the
	// Responder only classifies. Run then never replies and only returns on error or when
	// its context is cancelled.
	Replies int

	// Pool provides the read buffer. Defaults to buffer.DataPool, so frames larger than
	// its MTU are truncated.
	Pool *buffer.Pool
}

// Run runs the packet loop on rw, typically a *tun.Device. An error from a read is
// returned unless the context is done, in which case the read error is expected because
// the caller closes the device to stop the loop.
func (r *Responder) Run(ctx context.Context, rw io.ReadWriter) error {
	pool := r.Pool
	if pool == nil {
		pool = buffer.DataPool
	}
	data := pool.Get(pool.MTU)
	defer pool.Put(data)

	replies := 0
	for r.Replies == 0 || replies < r.Replies {
		data.Resize(pool.MTU)
		n, err := rw.Read(data.Raw())
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read failed: %w", err)
		}
		if n < tun.PrefixLen {
			dlog.Debugf(ctx, "%4d short frame", n)
			continue
		}
		data.Resize(n - tun.PrefixLen)
		dlog.Infof(ctx, "%4d %s", n, Describe(r.Framing, data.Raw()))
		if r.Replies == 0 {
			continue
		}

		reply := r.reply(data)
		if reply == nil {
			continue
		}
		if _, err = rw.Write(reply.Raw()); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
		replies++
	}
	return nil
}

func (r *Responder) reply(data *buffer.Data) *buffer.Data {
	if !r.Framing.IsIPv6(data.Raw()) {
		return nil
	}
	h, msg, ok := parseICMPv6(data.Buf())
	if !ok || msg.Type != ipv6.ICMPTypeEchoRequest {
		return nil
	}
	body, err := (&icmp.Message{Type: ipv6.ICMPTypeEchoReply, Body: msg.Body}).Marshal(icmp.IPv6PseudoHeader(h.Dst, h.Src))
	if err != nil || ipv6.HeaderLen+len(body) > len(data.Buf()) {
		return nil
	}

	// The copy keeps the prefix and the header fields that the reply shares with the request.
	reply := data.Copy(ipv6.HeaderLen + len(body))
	pkt := reply.Buf()
	pkt[4] = byte(len(body) >> 8)
	pkt[5] = byte(len(body))
	copy(pkt[8:24], h.Dst.To16())
	copy(pkt[24:40], h.Src.To16())
	copy(pkt[ipv6.HeaderLen:], body)
	return reply
}

// parseICMPv6 parses an IPv6 packet that carries an ICMPv6 message directly after the
// fixed header. Packets with extension headers are not considered.
func parseICMPv6(pkt []byte) (*ipv6.Header, *icmp.Message, bool) {
	h, err := ipv6.ParseHeader(pkt)
	if err != nil || h.NextHeader != protocolICMPv6 {
		return h, nil, false
	}
	end := ipv6.HeaderLen + h.PayloadLen
	if end > len(pkt) {
		return h, nil, false
	}
	msg, err := icmp.ParseMessage(protocolICMPv6, pkt[ipv6.HeaderLen:end])
	if err != nil {
		return h, nil, false
	}
	return h, msg, true
}

// Describe returns a one line description of a frame read from a tun device.
func Describe(framing tun.Framing, frame []byte) string {
	switch {
	case framing.IsIPv4(frame):
		pkt := tun.Payload(frame)
		if len(pkt) >= 20 {
			return fmt.Sprintf("IPv4 %s -> %s", net.IP(pkt[12:16]), net.IP(pkt[16:20]))
		}
		return "IPv4"
	case framing.IsIPv6(frame):
		h, msg, ok := parseICMPv6(tun.Payload(frame))
		switch {
		case h == nil:
			return "IPv6"
		case !ok:
			return fmt.Sprintf("IPv6 %s -> %s NextHeader=%d", h.Src, h.Dst, h.NextHeader)
		default:
			return fmt.Sprintf("IPv6 %s -> %s ICMPv6 %s", h.Src, h.Dst, msg.Type)
		}
	default:
		return "UNKNOWN"
	}
}
