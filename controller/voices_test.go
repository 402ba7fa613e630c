package controller

import (
	"testing"

	"github.com/boneycircuitry/megamega2612/ym2612"
)

func noteOnBytes(note, vel byte) []byte { return []byte{0x90, note, vel} }
func noteOffBytes(note byte) []byte     { return []byte{0x80, note, 0} }

func feedMIDI(c *Controller, bytes []byte) {
	for _, b := range bytes {
		c.HandleMIDIByte(b)
	}
}

func TestController_AllocationOrder(t *testing.T) {
	c, _ := newTestController(t)

	// Seven notes into six voices: first six claim voices in order, the
	// seventh is dropped
	for n := byte(60); n < 67; n++ {
		feedMIDI(c, noteOnBytes(n, 100))
	}

	voices := c.Voices()
	for i := 0; i < 6; i++ {
		if voices[i].Note != byte(60+i) {
			t.Errorf("voice %d: expected note %d, got %d", i, 60+i, voices[i].Note)
		}
		if !voices[i].Scheduled || voices[i].On {
			t.Errorf("voice %d: expected scheduled and not yet on", i)
		}
	}
	for i := range voices {
		if voices[i].Note == 66 {
			t.Errorf("voice %d: dropped note 66 should not be held", i)
		}
	}
}

func TestController_EndToEndNoteOn(t *testing.T) {
	c, rec := newTestController(t)

	// Middle C at velocity 100 with velocity sensitivity 2 and the
	// startup preset: the muted ops 0-2 blend to attenuation 107, the
	// full-level carrier lands at 6
	feedMIDI(c, noteOnBytes(0x3C, 0x64))
	if len(rec.writes) != 0 {
		t.Fatalf("expected no writes before tick, got %d", len(rec.writes))
	}

	c.Tick()
	expectLinkWrites(t, rec.writes, []ym2612.Write{
		{Group: ym2612.Group13, Reg: 0x40, Data: 107},
		{Group: ym2612.Group13, Reg: 0x48, Data: 107},
		{Group: ym2612.Group13, Reg: 0x44, Data: 107},
		{Group: ym2612.Group13, Reg: 0x4C, Data: 6},
		{Group: ym2612.Group13, Reg: 0xA4, Data: 0x21},
		{Group: ym2612.Group13, Reg: 0xA0, Data: 0x37},
		{Group: ym2612.Group13, Reg: 0x28, Data: 0xF0},
	})

	if v := c.Voices()[0]; !v.On || !v.Scheduled {
		t.Errorf("expected voice 0 on after tick, got %+v", v)
	}
}

func TestController_SecondBankVoices(t *testing.T) {
	c, rec := newTestController(t)

	// Fill voices 0-2, then the fourth note lands on the second bank
	for n := byte(60); n < 64; n++ {
		feedMIDI(c, noteOnBytes(n, 100))
	}
	c.Tick()

	// Voice 3 writes go to group 1 with the register offset folded away,
	// except key-on which always rides the first bank
	var keyOns []ym2612.Write
	for _, w := range rec.writes {
		if w.Reg == 0x28 {
			keyOns = append(keyOns, w)
		}
	}
	if len(keyOns) != 4 {
		t.Fatalf("expected 4 key-on writes, got %d", len(keyOns))
	}
	if keyOns[3] != (ym2612.Write{Group: ym2612.Group13, Reg: 0x28, Data: 0xF4}) {
		t.Errorf("expected voice 3 key-on {0 0x28 0xF4}, got %+v", keyOns[3])
	}

	found := false
	for _, w := range rec.writes {
		if w.Group == ym2612.Group46 && w.Reg == 0xA4 {
			found = true
		}
	}
	if !found {
		t.Error("expected a second-bank pitch write for voice 3")
	}
}

func TestController_MinVelocityFloor(t *testing.T) {
	c, _ := newTestController(t)

	feedMIDI(c, noteOnBytes(60, 10))
	if v := c.Voices()[0]; v.Velocity != 50 {
		t.Errorf("expected velocity floored to 50, got %d", v.Velocity)
	}

	feedMIDI(c, noteOnBytes(61, 120))
	if v := c.Voices()[1]; v.Velocity != 120 {
		t.Errorf("expected velocity 120, got %d", v.Velocity)
	}
}

func TestController_NoteOffDeferred(t *testing.T) {
	c, rec := newTestController(t)

	feedMIDI(c, noteOnBytes(60, 100))
	c.Tick()
	rec.writes = nil

	// Note-off only schedules; the voice stays on until the next tick
	feedMIDI(c, noteOffBytes(60))
	v := c.Voices()[0]
	if v.Scheduled || !v.On {
		t.Fatalf("expected scheduled-off but still on, got %+v", v)
	}
	if len(rec.writes) != 0 {
		t.Fatalf("expected no writes at note-off, got %d", len(rec.writes))
	}

	c.Tick()
	expectLinkWrites(t, rec.writes, []ym2612.Write{
		{Group: ym2612.Group13, Reg: 0x28, Data: 0x00},
	})
	v = c.Voices()[0]
	if v.On || v.Scheduled || v.Note != 0 {
		t.Errorf("expected voice cleared, got %+v", v)
	}
}

func TestController_SustainHoldsVoices(t *testing.T) {
	c, rec := newTestController(t)

	// Pedal down reads as data 0 on this build
	feedMIDI(c, []byte{0xB0, 64, 0})
	feedMIDI(c, noteOnBytes(60, 100))
	c.Tick()
	rec.writes = nil

	feedMIDI(c, noteOffBytes(60))
	c.Tick()
	c.Tick()

	v := c.Voices()[0]
	if !v.On || v.Scheduled {
		t.Fatalf("expected voice held by sustain, got %+v", v)
	}
	if len(rec.writes) != 0 {
		t.Fatalf("expected no writes while sustained, got %v", rec.writes)
	}

	// Pedal up: the next tick takes the voice down
	feedMIDI(c, []byte{0xB0, 64, 127})
	c.Tick()
	expectLinkWrites(t, rec.writes, []ym2612.Write{
		{Group: ym2612.Group13, Reg: 0x28, Data: 0x00},
	})
	if v := c.Voices()[0]; v.On {
		t.Errorf("expected voice off after sustain release, got %+v", v)
	}
}

func TestController_Retrigger(t *testing.T) {
	c, rec := newTestController(t)

	feedMIDI(c, noteOnBytes(60, 100))
	c.Tick()
	rec.writes = nil

	// Same note again while sounding: off and back on synchronously,
	// no tick needed
	feedMIDI(c, noteOnBytes(60, 100))
	expectLinkWrites(t, rec.writes, []ym2612.Write{
		{Group: ym2612.Group13, Reg: 0x28, Data: 0x00},
		{Group: ym2612.Group13, Reg: 0xA4, Data: 0x21},
		{Group: ym2612.Group13, Reg: 0xA0, Data: 0x37},
		{Group: ym2612.Group13, Reg: 0x28, Data: 0xF0},
	})

	// No second voice was claimed
	if v := c.Voices()[1]; v.Scheduled || v.On {
		t.Errorf("expected voice 1 untouched, got %+v", v)
	}
}

func TestController_PitchBendSilencesAll(t *testing.T) {
	c, rec := newTestController(t)

	for n := byte(60); n < 63; n++ {
		feedMIDI(c, noteOnBytes(n, 100))
	}
	c.Tick()
	rec.writes = nil

	feedMIDI(c, []byte{0xE0, 0x00})
	if len(rec.writes) != 6 {
		t.Fatalf("expected 6 key-off writes, got %d", len(rec.writes))
	}
	wantData := []uint8{0x00, 0x01, 0x02, 0x04, 0x05, 0x06}
	for i, w := range rec.writes {
		if w.Reg != 0x28 || w.Data != wantData[i] {
			t.Errorf("write %d: expected key-off 0x%02X, got %+v", i, wantData[i], w)
		}
	}

	for i, v := range c.Voices() {
		if v.On || v.Scheduled || v.Note != 0 {
			t.Errorf("voice %d: expected cleared, got %+v", i, v)
		}
	}
}

func TestController_ModWheel(t *testing.T) {
	rec := &recordLink{}
	cfg := DefaultConfig()
	cfg.Patch = 1 // toxic sludge carries LFO rate 2
	c := New(rec, testLogger(), cfg)
	rec.writes = nil

	// Wheel up maps 0-127 onto the 8 enabled rates
	feedMIDI(c, []byte{0xB0, 1, 127})
	expectLinkWrites(t, rec.writes, []ym2612.Write{
		{Group: ym2612.Group13, Reg: 0x22, Data: 0x0F},
	})

	// Wheel back to zero restores the mirrored rate
	rec.writes = nil
	feedMIDI(c, []byte{0xB0, 1, 0})
	expectLinkWrites(t, rec.writes, []ym2612.Write{
		{Group: ym2612.Group13, Reg: 0x22, Data: 0x09},
	})
}

func TestController_ModWheelRestoreWithLFOOff(t *testing.T) {
	c, rec := newTestController(t)

	// Startup preset has the LFO off; wheel release writes a bare zero
	feedMIDI(c, []byte{0xB0, 1, 0})
	expectLinkWrites(t, rec.writes, []ym2612.Write{
		{Group: ym2612.Group13, Reg: 0x22, Data: 0x00},
	})
}

func TestController_AftertouchVibrato(t *testing.T) {
	c, rec := newTestController(t)

	// Full pressure: depth 7 into the shared stereo register on every
	// channel, register by register across both banks
	feedMIDI(c, []byte{0xD0, 127})
	expectLinkWrites(t, rec.writes, []ym2612.Write{
		{Group: ym2612.Group13, Reg: 0xB4, Data: 0xC7},
		{Group: ym2612.Group46, Reg: 0xB4, Data: 0xC7},
		{Group: ym2612.Group13, Reg: 0xB5, Data: 0xC7},
		{Group: ym2612.Group46, Reg: 0xB5, Data: 0xC7},
		{Group: ym2612.Group13, Reg: 0xB6, Data: 0xC7},
		{Group: ym2612.Group46, Reg: 0xB6, Data: 0xC7},
	})

	// Zero pressure restores the mirrored depth, zero on this preset
	rec.writes = nil
	feedMIDI(c, []byte{0xD0, 0})
	if rec.writes[0].Data != 0xC0 {
		t.Errorf("expected restore data 0xC0, got 0x%02X", rec.writes[0].Data)
	}
	if len(rec.writes) != 6 {
		t.Errorf("expected 6 writes, got %d", len(rec.writes))
	}
}

func TestController_AllNotesOff(t *testing.T) {
	c, rec := newTestController(t)

	feedMIDI(c, noteOnBytes(60, 100))
	c.Tick()
	rec.writes = nil

	c.AllNotesOff()
	if len(rec.writes) != 6 {
		t.Fatalf("expected 6 key-off writes, got %d", len(rec.writes))
	}
	for i, v := range c.Voices() {
		if v.On || v.Scheduled {
			t.Errorf("voice %d: expected off, got %+v", i, v)
		}
	}
}
