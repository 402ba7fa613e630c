// Package proxy implements the chip-side half of the bridge: a receiver
// that reassembles 3-byte commands off the link and a writer that turns
// each command into timed 2-phase writes on the chip's parallel bus.
//
// On hardware this logic runs on the second microcontroller. The same
// receiver drives the emulated bus when the controller runs headless.
package proxy

import (
	"sync"

	"github.com/boneycircuitry/megamega2612/link"
)

// Block names one of the chip's two register blocks. Each block carries
// three channels and has its own address-line select.
type Block uint8

const (
	Block13 Block = iota // channels 1-3
	Block46              // channels 4-6
)

func (b Block) String() string {
	if b == Block46 {
		return "4-6"
	}
	return "1-3"
}

// Bus is the physical bus contract: address-line selects plus a strobed
// byte write. Timing lives behind the implementation.
type Bus interface {
	// SelectRegister sets the address lines to register-select for a block.
	SelectRegister(b Block)
	// SelectData sets the address lines to data-select for the same block.
	SelectData(b Block)
	// StrobeWrite pulses one byte onto the bus.
	StrobeWrite(data uint8)
}

// Writer performs register writes against a Bus, demultiplexing the
// command flag into one or both register blocks.
type Writer struct {
	bus Bus
}

// NewWriter returns a writer strobing bus.
func NewWriter(bus Bus) *Writer {
	return &Writer{bus: bus}
}

// write is one complete register write to one block: select the register
// address, strobe it, switch to data select, strobe the data byte.
func (w *Writer) write(b Block, reg, data uint8) {
	w.bus.SelectRegister(b)
	w.bus.StrobeWrite(reg)
	w.bus.SelectData(b)
	w.bus.StrobeWrite(data)
}

// Apply routes one decoded command: flag 0 writes block 1-3, flag 1
// writes block 4-6, any other value writes both.
func (w *Writer) Apply(flag, reg, data uint8) {
	switch flag {
	case 0:
		w.write(Block13, reg, data)
	case 1:
		w.write(Block46, reg, data)
	default:
		w.write(Block13, reg, data)
		w.write(Block46, reg, data)
	}
}

// Receiver reassembles commands from the link byte stream. Three states
// cycle per command: flag, register, then data, which triggers the bus
// write. There is no framing beyond the count; a dropped byte shifts every
// later byte into the wrong slot until the stream happens to realign.
type Receiver struct {
	mu    sync.Mutex
	w     *Writer
	state int
	flag  uint8
	reg   uint8
}

var _ link.ByteSink = (*Receiver)(nil)

// NewReceiver returns a receiver applying commands through w.
func NewReceiver(w *Writer) *Receiver {
	return &Receiver{w: w}
}

// Feed consumes one link byte and returns the echo byte.
func (r *Receiver) Feed(b byte) byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case 0:
		r.flag = b
	case 1:
		r.reg = b
	case 2:
		r.w.Apply(r.flag, r.reg, b)
	}

	r.state++
	if r.state > 2 {
		r.state = 0
	}
	return link.Sentinel
}
