package controller

import "github.com/boneycircuitry/megamega2612/ym2612"

// handler receives decoded MIDI events. The controller implements it;
// the indirection keeps message reassembly free of voice logic.
type handler interface {
	noteOn(note, velocity uint8)
	noteOff(note uint8)
	control(num, val uint8)
	aftertouch(pressure uint8)
	pitchBend()
}

var _ handler = (*Controller)(nil)

// parser reassembles MIDI messages one byte at a time. Bytes accumulate
// in a 128-byte ring; a message is complete when enough data bytes have
// followed the most recent status byte. The caller holds the controller
// lock for the duration of feed, so dispatch runs with the same state the
// byte arrived under.
type parser struct {
	h     handler
	buf   [128]byte
	idx   int // next write position
	start int // position of the most recent status byte
}

func newParser(h handler) *parser {
	return &parser{h: h}
}

// feed consumes one wire byte and dispatches any message it completes.
func (p *parser) feed(b byte) {
	// realtime and system traffic never enters the buffer
	if b >= 0xF8 {
		return
	}

	p.buf[p.idx] = b
	if b&0x80 != 0 {
		p.start = p.idx
	}
	p.idx = ym2612.Wrap(p.idx+1, 0, 127)

	// A status byte in the last two ring slots puts its data bytes across
	// the wrap point, where plain index subtraction goes wrong. Both spots
	// get their own completion rule.
	var d1, d2 byte
	case1, case2 := false, false
	switch p.start {
	case 127:
		d1, d2 = p.buf[0], p.buf[1]
		case1 = true
	case 126:
		d1, d2 = p.buf[127], p.buf[0]
		case2 = true
	default:
		d1, d2 = p.buf[p.start+1], p.buf[p.start+2]
	}

	diff := p.idx - p.start
	status := p.buf[p.start] & 0xF0

	if diff == 3 || (p.idx == 2 && case1) || (p.idx == 1 && case2) {
		switch status {
		case 0x90:
			p.h.noteOn(d1, d2)
		case 0x80:
			p.h.noteOff(d1)
		case 0xB0:
			p.h.control(d1, d2)
		}
	} else if diff == 2 || (p.idx == 1 && case1) || (p.idx == 0 && case2) {
		switch status {
		case 0xD0:
			p.h.aftertouch(d1)
		case 0xE0:
			p.h.pitchBend()
		}
	}
}
