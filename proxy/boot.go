package proxy

// bootPatch is the register setup strobed at power-on, before the
// controller has sent anything: LFO off, DAC off, every key released, and
// a plain test voice on channels 1-3 so the chip makes sound even with no
// controller attached. Register order matters; the key-off and frequency
// writes come last.
var bootPatch = [][2]uint8{
	{0x22, 0x00}, // LFO off
	{0x27, 0x00}, // timer off, channel 3 normal mode
	{0x28, 0x01}, // key off channels 2-6
	{0x28, 0x02},
	{0x28, 0x04},
	{0x28, 0x05},
	{0x28, 0x06},
	{0x2B, 0x00}, // DAC off
	{0x30, 0x71}, // DT1/MUL
	{0x34, 0x0D},
	{0x38, 0x33},
	{0x3C, 0x01},
	{0x40, 0x23}, // total level
	{0x44, 0x2D},
	{0x48, 0x26},
	{0x4C, 0x00},
	{0x50, 0x5F}, // RS/AR
	{0x54, 0x99},
	{0x58, 0x5F},
	{0x5C, 0x94},
	{0x60, 0x05}, // AM/D1R
	{0x64, 0x05},
	{0x68, 0x05},
	{0x6C, 0x07},
	{0x70, 0x02}, // D2R
	{0x74, 0x02},
	{0x78, 0x02},
	{0x7C, 0x02},
	{0x80, 0x11}, // D1L/RR
	{0x84, 0x11},
	{0x88, 0x11},
	{0x8C, 0xA6},
	{0x90, 0x00}, // SSG-EG off
	{0x94, 0x00},
	{0x98, 0x00},
	{0x9C, 0x00},
	{0xB0, 0x32}, // feedback/algorithm
	{0xB4, 0xC0}, // both speakers on
	{0x28, 0x00}, // key off channel 1
	{0xA4, 0x22}, // frequency
	{0xA0, 0x69},
}

// PowerOn strobes the boot patch. All writes go to the 1-3 register block;
// the key register lives there and addresses both banks by channel code.
func (w *Writer) PowerOn() {
	for _, p := range bootPatch {
		w.write(Block13, p[0], p[1])
	}
}
