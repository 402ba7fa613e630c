// Package link frames register writes as 3-byte commands and carries them
// from the controller to the chip proxy. The wire format is flag, register,
// data with no checksum and no acknowledgment; the proxy echoes a fixed
// sentinel byte that carries no information. A dropped byte shifts every
// following command by one position until the stream happens to realign,
// and the protocol has no resync mechanism.
package link

import "github.com/boneycircuitry/megamega2612/ym2612"

// Sentinel is the byte the proxy returns for every byte it receives. It is
// ignored; the link is fire-and-forget.
const Sentinel byte = 0x00

// Link is the controller's sending side.
type Link interface {
	// Send delivers one register write to the proxy.
	Send(w ym2612.Write) error
	Close() error
}

// ByteSink is the proxy's receiving side: one byte in, one echo byte back.
type ByteSink interface {
	Feed(b byte) byte
}

// Frame encodes a register write as its wire command.
func Frame(w ym2612.Write) [3]byte {
	return [3]byte{byte(w.Group), w.Reg, w.Data}
}
