package ym2612

import "testing"

func TestPitch_MiddleC(t *testing.T) {
	// MIDI 60 is C in block 4: F-number 311 (0x137), so the high byte
	// carries 4<<3 | 1 and the low byte the bottom eight bits
	hi, lo := Pitch(60)
	if hi != 0x21 {
		t.Errorf("expected hi 0x21, got 0x%02X", hi)
	}
	if lo != 0x37 {
		t.Errorf("expected lo 0x37, got 0x%02X", lo)
	}
}

func TestPitch_AllNotes(t *testing.T) {
	for n := 0; n < 128; n++ {
		hi, lo := Pitch(uint8(n))

		f := fNums[n%12]
		if lo != uint8(f) {
			t.Errorf("note %d: expected lo 0x%02X, got 0x%02X", n, uint8(f), lo)
		}
		if hi&0x07 != uint8(f>>8) {
			t.Errorf("note %d: expected F-number high bits %d, got %d", n, f>>8, hi&0x07)
		}

		block := int(hi >> 3)
		if block != Wrap(n/12-1, 0, 7) {
			t.Errorf("note %d: expected block %d, got %d", n, Wrap(n/12-1, 0, 7), block)
		}
		if hi>>6 != 0 {
			t.Errorf("note %d: high byte 0x%02X has bits above the block field", n, hi)
		}
	}
}

func TestPitch_RangeWraps(t *testing.T) {
	// The bottom MIDI octave computes block -1 and wraps to 7; everything
	// above block 7 wraps to 0
	for n := 0; n < 12; n++ {
		hi, _ := Pitch(uint8(n))
		if hi>>3 != 7 {
			t.Errorf("note %d: expected block 7, got %d", n, hi>>3)
		}
	}
	for n := 108; n < 128; n++ {
		hi, _ := Pitch(uint8(n))
		if hi>>3 != 0 {
			t.Errorf("note %d: expected block 0, got %d", n, hi>>3)
		}
	}

	// Highest non-wrapped octave
	hi, _ := Pitch(107)
	if hi>>3 != 7 {
		t.Errorf("note 107: expected block 7, got %d", hi>>3)
	}
}
