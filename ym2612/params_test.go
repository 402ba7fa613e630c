package ym2612

import "testing"

func expectWrites(t *testing.T, got, want []Write) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d writes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("write %d: expected {%d 0x%02X 0x%02X}, got {%d 0x%02X 0x%02X}",
				i, want[i].Group, want[i].Reg, want[i].Data,
				got[i].Group, got[i].Reg, got[i].Data)
		}
	}
}

func TestParameters_AdjustWraps(t *testing.T) {
	var p Parameters

	// Stepping past either bound lands on the other
	p.Feedback = 7
	p.Adjust(ParamFeedback, 0, 1)
	if p.Feedback != 0 {
		t.Errorf("expected feedback 0, got %d", p.Feedback)
	}
	p.Adjust(ParamFeedback, 0, -1)
	if p.Feedback != 7 {
		t.Errorf("expected feedback 7, got %d", p.Feedback)
	}

	// Detune is signed -3..+3
	p.Detune[1] = -3
	p.Adjust(ParamDetune, 1, -1)
	if p.Detune[1] != 3 {
		t.Errorf("expected detune +3, got %d", p.Detune[1])
	}
}

func TestParameters_DetuneWrites(t *testing.T) {
	var p Parameters
	p.Detune[0] = -1
	p.Multiple[0] = 4

	// Detune is biased +3 into bits 4-6, multiple shares the register
	w := p.Writes(ParamDetune, 0)
	expectWrites(t, w, []Write{
		{Group13, 0x30, 0x24},
		{Group13, 0x31, 0x24},
		{Group13, 0x32, 0x24},
		{Group46, 0x30, 0x24},
		{Group46, 0x31, 0x24},
		{Group46, 0x32, 0x24},
	})
}

func TestParameters_SharedRegisterPairs(t *testing.T) {
	var p Parameters
	p.Algorithm = 4
	p.Feedback = 6

	// Algorithm and feedback both rewrite 0xB0 with the pair packed
	if w := p.Writes(ParamAlgorithm, 0); w[0].Data != 0x34 {
		t.Errorf("algorithm write: expected 0x34, got 0x%02X", w[0].Data)
	}
	if w := p.Writes(ParamFeedback, 0); w[0].Data != 0x34 {
		t.Errorf("feedback write: expected 0x34, got 0x%02X", w[0].Data)
	}

	// Sustain level and release share 0x80, both inverted
	p.SustainLevel[0] = 13
	p.Release[0] = 9
	if w := p.Writes(ParamSustainLevel, 0); w[0].Data != 0x26 {
		t.Errorf("sust level write: expected 0x26, got 0x%02X", w[0].Data)
	}
	if w := p.Writes(ParamRelease, 0); w[0].Data != 0x26 {
		t.Errorf("release write: expected 0x26, got 0x%02X", w[0].Data)
	}
}

func TestParameters_SSGEGWrites(t *testing.T) {
	var p Parameters

	// 0 clears the register; shapes 1-8 store value-1 with bit 3 set
	p.SSGEG[2] = 0
	if w := p.Writes(ParamSSGEG, 2); w[0].Data != 0x00 || w[0].Reg != 0x94 {
		t.Errorf("off: expected reg 0x94 data 0x00, got 0x%02X 0x%02X", w[0].Reg, w[0].Data)
	}
	p.SSGEG[2] = 1
	if w := p.Writes(ParamSSGEG, 2); w[0].Data != 0x08 {
		t.Errorf("shape 1: expected 0x08, got 0x%02X", w[0].Data)
	}
	p.SSGEG[2] = 8
	if w := p.Writes(ParamSSGEG, 2); w[0].Data != 0x0F {
		t.Errorf("shape 8: expected 0x0F, got 0x%02X", w[0].Data)
	}
}

func TestParameters_LFOWrites(t *testing.T) {
	var p Parameters

	// The LFO register is global: one write, enable bit 3, rate bits 0-2
	p.LFOFreq = 0
	expectWrites(t, p.Writes(ParamLFOFreq, 0), []Write{{Group13, 0x22, 0x00}})

	p.LFOFreq = 3
	expectWrites(t, p.Writes(ParamLFOFreq, 0), []Write{{Group13, 0x22, 0x0A}})
}

func TestParameters_ControllerOnlyParams(t *testing.T) {
	var p Parameters

	// Play settings never reach the chip
	for _, pr := range []Param{ParamVelSens, ParamMinVel, ParamPolyphony} {
		if w := p.Writes(pr, 0); w != nil {
			t.Errorf("param %d: expected no writes, got %d", pr, len(w))
		}
	}
}

func TestParameters_AdjustPatchLoadsPreset(t *testing.T) {
	var p Parameters
	p.Patch = 15

	w := p.Adjust(ParamPatch, 0, 1)
	if p.Patch != 16 {
		t.Fatalf("expected patch 16, got %d", p.Patch)
	}
	if len(w) != 181 {
		t.Errorf("expected 181 writes, got %d", len(w))
	}
	if p.Algorithm != Patches[16].Algorithm {
		t.Errorf("expected algorithm %d, got %d", Patches[16].Algorithm, p.Algorithm)
	}
	if p.Multiple[0] != Patches[16].Op[0].Multiple {
		t.Errorf("expected op0 multiple %d, got %d", Patches[16].Op[0].Multiple, p.Multiple[0])
	}
}

func TestParameters_PanelGroups(t *testing.T) {
	// Four groups: play settings, tone, envelope, LFO
	wantLens := []int{4, 5, 7, 4}
	for g := 0; g < NumGroups; g++ {
		if GroupLen(g) != wantLens[g] {
			t.Errorf("group %d: expected %d params, got %d", g, wantLens[g], GroupLen(g))
		}
	}
	if GroupParam(0, 0) != ParamPatch {
		t.Errorf("expected group 0 to start at the patch param")
	}
	if GroupParam(2, 0) != ParamAttack {
		t.Errorf("expected group 2 to start at the attack param")
	}
}

func TestParameters_Display(t *testing.T) {
	var p Parameters

	// Per-op labels carry a 1-based op prefix, multiple 0 reads 0.5
	p.Multiple[2] = 0
	label, value := p.Display(ParamMultiple, 2)
	if label != "op 3 freq mult" || value != "0.5" {
		t.Errorf("expected op 3 freq mult / 0.5, got %q / %q", label, value)
	}

	// Algorithm shows its 1-based number and the routing diagram
	p.Algorithm = 7
	label, value = p.Display(ParamAlgorithm, 0)
	if label != "algorithm 8" || value != "1~, 2~, 3~, 4~" {
		t.Errorf("expected algorithm 8 diagram, got %q / %q", label, value)
	}

	// Patch shows the preset name
	p.Patch = 15
	if _, value = p.Display(ParamPatch, 0); value != "one operator" {
		t.Errorf("expected one operator, got %q", value)
	}

	// Plain numbers
	p.MinVel = 50
	if label, value = p.Display(ParamMinVel, 3); label != "min velocity" || value != "50" {
		t.Errorf("expected min velocity / 50, got %q / %q", label, value)
	}

	p.SSGEG[0] = 3
	if _, value = p.Display(ParamSSGEG, 0); value != "forward+rev loop" {
		t.Errorf("expected forward+rev loop, got %q", value)
	}

	p.LFOFreq = 8
	if _, value = p.Display(ParamLFOFreq, 0); value != "69.22 Hz" {
		t.Errorf("expected 69.22 Hz, got %q", value)
	}
}
