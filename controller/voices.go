package controller

import "github.com/boneycircuitry/megamega2612/ym2612"

// Voice is one of the chip's six channels. A voice is free for allocation
// only when neither flag is set; Scheduled and On disagree exactly while a
// transition waits for the commit tick.
type Voice struct {
	Note      uint8
	Scheduled bool
	On        bool
	PitchHi   uint8
	PitchLo   uint8
	Velocity  uint8
}

// noteOn claims the first free voice for the note and schedules it on.
// A note already sounding on a voice retriggers that voice synchronously
// instead. With all six voices busy the note is dropped.
func (c *Controller) noteOn(note, velocity uint8) {
	hi, lo := ym2612.Pitch(note)

	for i := range c.voices {
		v := &c.voices[i]

		if !v.Scheduled && !v.On {
			vel := velocity
			if int(vel) < c.params.MinVel {
				vel = uint8(c.params.MinVel)
			}
			v.Velocity = vel
			v.PitchHi, v.PitchLo = hi, lo
			v.Note = note
			v.Scheduled = true
			return
		}

		if v.Scheduled && v.On && v.Note == note {
			// clean retrigger: off and straight back on, not deferred
			c.send(ym2612.KeyOff(i))
			for _, w := range ym2612.PitchWrites(i, v.PitchHi, v.PitchLo) {
				c.send(w)
			}
			c.send(ym2612.KeyOn(i))
			return
		}
	}

	c.log.Debug("no free voice, note dropped", "note", note)
}

// noteOff schedules the voice holding note to be turned off. The voice
// stays On until the commit tick takes it down.
func (c *Controller) noteOff(note uint8) {
	for i := range c.voices {
		v := &c.voices[i]
		if v.Scheduled && v.On && v.Note == note {
			v.Scheduled = false
			return
		}
	}
}

// tick commits pending transitions. Turning a voice on writes the four
// operator levels, then pitch, then key-on; the level of each operator is
// the velocity-weighted blend of incoming velocity and the preset level.
// Scheduled-off voices stay sounding while sustain holds.
func (c *Controller) tick() {
	for i := range c.voices {
		v := &c.voices[i]

		switch {
		case v.Scheduled && !v.On:
			for op := 0; op < 4; op++ {
				lvl := (c.params.VelSens*int(v.Velocity) + (10-c.params.VelSens)*c.params.TotalLevel[op]) / 10
				c.send(ym2612.LevelWrite(i, op, uint8(127-lvl)))
			}
			for _, w := range ym2612.PitchWrites(i, v.PitchHi, v.PitchLo) {
				c.send(w)
			}
			c.send(ym2612.KeyOn(i))
			v.On = true

		case !v.Scheduled && v.On && !c.sustain:
			c.send(ym2612.KeyOff(i))
			v.Note = 0
			v.Scheduled = false
			v.On = false
		}
	}
}

// pitchBend is the bend handler: the unit has no workable bend on the
// chip side, so any bend message silences everything instead.
func (c *Controller) pitchBend() {
	for i := range c.voices {
		c.send(ym2612.KeyOff(i))
		v := &c.voices[i]
		v.Note = 0
		v.Scheduled = false
		v.On = false
	}
}

// control handles the two controllers the unit responds to: the mod wheel
// scales the LFO rate live without touching the mirror, and the sustain
// pedal drives the latch the commit tick consults. Pedal polarity is
// inverted on this build's wiring; data 0 means pedal down.
func (c *Controller) control(num, val uint8) {
	switch num {
	case 1:
		switch {
		case val == 0 && c.params.LFOFreq == 0:
			c.send(ym2612.Write{Group: ym2612.Group13, Reg: ym2612.RegLFO, Data: 0x00})
		case val == 0:
			c.send(ym2612.Write{Group: ym2612.Group13, Reg: ym2612.RegLFO, Data: 0x08 + uint8(c.params.LFOFreq) - 1})
		default:
			c.send(ym2612.Write{Group: ym2612.Group13, Reg: ym2612.RegLFO, Data: 0x08 + val/18})
		}
	case 64:
		c.sustain = val == 0
	}
}

// aftertouch scales vibrato depth live across all six channels, restoring
// the mirrored depth at zero pressure. Tremolo and the pan bits share the
// register and ride along unchanged.
func (c *Controller) aftertouch(pressure uint8) {
	depth := uint8(c.params.Vibrato)
	if pressure != 0 {
		depth = pressure / 18
	}
	data := 0xC0 | uint8(c.params.Tremolo)<<4 | depth

	for i := uint8(0); i < 3; i++ {
		for _, g := range [2]ym2612.Group{ym2612.Group13, ym2612.Group46} {
			c.send(ym2612.Write{Group: g, Reg: ym2612.RegStereoSens + i, Data: data})
		}
	}
}
