package ym2612

// fNums holds the F-number for each semitone C through B at the reference
// octave, tuned for the unit's master clock.
var fNums = [12]uint16{311, 329, 349, 370, 392, 415, 440, 466, 493, 523, 554, 586}

// Pitch converts a MIDI note number into the two frequency register bytes.
// The chip's block (octave) is note/12 - 1, so middle C lands in block 4.
// The block obeys the unit's usual range policy: the bottom MIDI octave
// wraps up to block 7 and notes above block 7 wrap down to block 0.
func Pitch(note uint8) (hi, lo uint8) {
	block := Wrap(int(note)/12-1, 0, 7)
	f := fNums[note%12]
	hi = uint8(block)<<3 | uint8(f>>8)&0x07
	lo = uint8(f)
	return hi, lo
}
