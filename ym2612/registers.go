// Package ym2612 holds the controller's knowledge of the Yamaha YM2612
// (OPN2) register interface: addresses, the per-operator register layout,
// parameter packing, pitch derivation, and the preset catalog.
//
// Nothing in this package touches hardware. Register writes are described
// as (group, register, data) triples and carried to the chip by the link
// and proxy packages.
package ym2612

// Group selects which half of the chip a write lands on. The register file
// is split into two banks of three channels each, addressed over separate
// bus lines.
type Group uint8

const (
	Group13  Group = 0 // channels 1-3 (part I)
	Group46  Group = 1 // channels 4-6 (part II)
	GroupAll Group = 2 // both banks (any wire flag above 1)
)

// Write is one register write, the unit of transport to the chip proxy.
type Write struct {
	Group Group
	Reg   uint8
	Data  uint8
}

// Global registers. These live in the part I bank only.
const (
	RegLFO   = 0x22 // LFO enable + frequency select
	RegTimer = 0x27 // timer control + channel 3 mode
	RegKey   = 0x28 // key on/off for all four operators of one channel
	RegDAC   = 0x2B // DAC enable
)

// Per-channel register bases. Add the channel offset 0-2 within a bank,
// plus the operator stride for the per-operator files.
const (
	RegDetuneMultiple  = 0x30 // DT1 bits 4-6, MUL bits 0-3, per operator
	RegTotalLevel      = 0x40 // attenuation, 0 is loudest, per operator
	RegRateScaleAttack = 0x50 // RS bits 6-7, AR bits 0-4, per operator
	RegAMDecay         = 0x60 // AM bit 7, D1R bits 0-4, per operator
	RegSustainRate     = 0x70 // D2R bits 0-4, per operator
	RegSustainRelease  = 0x80 // D1L bits 4-7, RR bits 0-3, per operator
	RegSSGEG           = 0x90 // SSG-EG envelope shape, per operator
	RegFreqLow         = 0xA0 // F-number low byte
	RegFreqHigh        = 0xA4 // block + F-number high bits, written first
	RegAlgFeedback     = 0xB0 // feedback bits 3-5, algorithm bits 0-2
	RegStereoSens      = 0xB4 // pan bits 6-7, AMS bits 4-5, FMS bits 0-2
)

// keyChannel maps a voice index to its channel code in RegKey. Bit 2 of
// the code selects the second bank, so code 3 is skipped.
var keyChannel = [6]uint8{0, 1, 2, 4, 5, 6}

// opOffset maps an operator index to its register stride. The hardware
// interleaves operators 2 and 3.
var opOffset = [4]uint8{0x00, 0x08, 0x04, 0x0C}

// Wrap bounds v to [min, max] the way every adjustable value on the unit
// behaves: stepping below the minimum lands on the maximum and stepping
// above the maximum lands on the minimum.
func Wrap(v, min, max int) int {
	if v < min {
		return max
	}
	if v > max {
		return min
	}
	return v
}

// KeyOn returns the key-on write for a voice, all four operators at once.
func KeyOn(voice int) Write {
	return Write{Group13, RegKey, 0xF0 | keyChannel[voice]}
}

// KeyOff returns the key-off write for a voice.
func KeyOff(voice int) Write {
	return Write{Group13, RegKey, keyChannel[voice]}
}

// PitchWrites returns the frequency register writes for a voice, high byte
// first so the low-byte write latches the full value.
func PitchWrites(voice int, hi, lo uint8) []Write {
	g, r := Group13, uint8(voice)
	if voice > 2 {
		g, r = Group46, uint8(voice)-3
	}
	return []Write{
		{g, RegFreqHigh + r, hi},
		{g, RegFreqLow + r, lo},
	}
}

// LevelWrite returns the total-level write for one operator of a voice.
// level is the raw register value, already inverted to attenuation.
func LevelWrite(voice, op int, level uint8) Write {
	g, r := Group13, uint8(voice)
	if voice > 2 {
		g, r = Group46, uint8(voice)-3
	}
	return Write{g, RegTotalLevel + r + opOffset[op], level}
}
