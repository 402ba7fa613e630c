package ym2612

// OperatorPatch holds one operator's slice of a preset.
type OperatorPatch struct {
	Multiple     int
	Detune       int
	TotalLevel   int
	Attack       int
	Decay        int
	SustainLevel int
	SustainRate  int
	Release      int
	RateScale    int
	SSGEG        int
	AMOn         int
}

// Patch is one entry of the preset catalog: the complete voice definition
// the unit can load in a single step.
type Patch struct {
	Name      string
	Algorithm int
	Feedback  int
	LFOFreq   int
	Vibrato   int
	Tremolo   int
	Op        [4]OperatorPatch
}

// Patches is the built-in preset catalog. Operator rows are positional:
// multiple, detune, level, attack, decay, sustain level, sustain rate,
// release, rate scale, SSG-EG, AM.
var Patches = [21]Patch{
	{Name: "ding dong piano", Algorithm: 7, Op: [4]OperatorPatch{
		{10, -3, 63, 0, 23, 0, 29, 1, 1, 0, 0},
		{8, 1, 117, 0, 23, 0, 29, 1, 2, 0, 0},
		{4, 3, 117, 0, 23, 0, 29, 1, 1, 0, 0},
		{2, 0, 127, 0, 23, 0, 29, 1, 2, 0, 0},
	}},
	{Name: "toxic sludge", Algorithm: 3, Feedback: 4, LFOFreq: 2, Vibrato: 4, Op: [4]OperatorPatch{
		{1, 0, 127, 0, 4, 14, 29, 7, 1, 0, 0},
		{10, 0, 127, 2, 0, 5, 16, 5, 1, 0, 0},
		{2, 0, 127, 12, 23, 0, 0, 8, 1, 0, 0},
		{6, 0, 127, 7, 31, 13, 29, 7, 1, 0, 0},
	}},
	{Name: "wooden steel", Algorithm: 4, Op: [4]OperatorPatch{
		{10, -3, 27, 0, 16, 0, 29, 7, 1, 0, 0},
		{8, 1, 112, 0, 16, 0, 29, 7, 2, 0, 0},
		{4, 3, 112, 9, 16, 0, 29, 7, 1, 0, 0},
		{2, 0, 127, 0, 21, 0, 29, 10, 2, 0, 0},
	}},
	{Name: "steel drum pad", Algorithm: 5, Feedback: 3, LFOFreq: 3, Tremolo: 3, Op: [4]OperatorPatch{
		{10, -3, 100, 10, 15, 13, 29, 9, 1, 0, 0},
		{8, 1, 117, 26, 23, 7, 29, 1, 2, 0, 0},
		{6, 3, 117, 25, 16, 12, 29, 19, 1, 0, 1},
		{2, 0, 127, 0, 21, 0, 29, 11, 2, 0, 0},
	}},
	{Name: "(un)naturhythm", Algorithm: 0, Feedback: 6, LFOFreq: 1, Vibrato: 6, Tremolo: 2, Op: [4]OperatorPatch{
		{10, -3, 88, 14, 18, 0, 29, 6, 2, 3, 1},
		{8, 1, 112, 17, 19, 0, 29, 6, 1, 1, 1},
		{1, 3, 112, 14, 19, 0, 29, 6, 2, 3, 1},
		{2, 0, 127, 8, 22, 15, 29, 8, 1, 0, 0},
	}},
	{Name: "reedy ripper", Algorithm: 2, Feedback: 5, Op: [4]OperatorPatch{
		{1, 3, 126, 16, 27, 13, 31, 8, 1, 0, 0},
		{2, -3, 97, 19, 22, 10, 31, 8, 1, 0, 0},
		{7, 3, 106, 27, 26, 12, 31, 8, 1, 0, 0},
		{2, 0, 127, 10, 21, 12, 27, 8, 1, 0, 0},
	}},
	{Name: "lately who?", Algorithm: 7, Feedback: 4, Op: [4]OperatorPatch{
		{4, -2, 124, 0, 16, 0, 29, 1, 1, 0, 0},
		{2, 2, 117, 0, 23, 0, 29, 1, 1, 0, 0},
		{1, 1, 120, 0, 31, 0, 0, 1, 1, 0, 0},
		{2, -1, 127, 0, 12, 0, 18, 1, 1, 0, 0},
	}},
	{Name: "tuned bounce", Algorithm: 3, Op: [4]OperatorPatch{
		{4, -3, 111, 11, 15, 0, 29, 9, 2, 0, 0},
		{6, 2, 79, 14, 20, 0, 29, 1, 2, 0, 0},
		{3, 3, 118, 2, 10, 0, 29, 10, 1, 0, 0},
		{4, -1, 127, 1, 17, 0, 29, 9, 2, 0, 0},
	}},
	{Name: "morph metal", Algorithm: 3, Feedback: 4, Op: [4]OperatorPatch{
		{4, -1, 111, 10, 15, 0, 29, 9, 2, 0, 0},
		{6, 2, 117, 22, 20, 0, 29, 1, 2, 0, 0},
		{7, 3, 118, 27, 17, 0, 31, 10, 1, 0, 0},
		{4, -1, 127, 1, 21, 0, 29, 9, 2, 0, 0},
	}},
	{Name: "get(s) nasty", Algorithm: 3, Feedback: 5, Op: [4]OperatorPatch{
		{2, -2, 116, 25, 25, 9, 31, 4, 1, 0, 0},
		{3, -2, 118, 23, 27, 10, 31, 4, 1, 0, 0},
		{2, 1, 119, 0, 19, 11, 31, 4, 1, 0, 0},
		{1, 0, 127, 0, 24, 13, 31, 4, 1, 0, 0},
	}},
	{Name: "flarp wobble", Algorithm: 5, Feedback: 5, LFOFreq: 2, Vibrato: 5, Tremolo: 2, Op: [4]OperatorPatch{
		{2, -1, 108, 8, 25, 4, 29, 4, 1, 0, 0},
		{2, 1, 117, 6, 16, 0, 29, 1, 2, 0, 0},
		{2, 3, 124, 12, 27, 0, 29, 3, 1, 0, 1},
		{2, 0, 127, 7, 26, 0, 29, 2, 2, 0, 0},
	}},
	{Name: "pan flute", Algorithm: 4, Feedback: 6, LFOFreq: 3, Vibrato: 2, Tremolo: 3, Op: [4]OperatorPatch{
		{4, -3, 117, 3, 16, 0, 29, 7, 1, 0, 0},
		{5, 3, 114, 22, 28, 0, 29, 7, 1, 0, 1},
		{4, -2, 117, 29, 23, 0, 29, 8, 1, 0, 0},
		{4, 0, 127, 18, 20, 0, 29, 7, 1, 0, 0},
	}},
	{Name: "deceptive bass", Algorithm: 5, Feedback: 2, LFOFreq: 5, Tremolo: 1, Op: [4]OperatorPatch{
		{2, 0, 127, 27, 25, 5, 31, 9, 2, 0, 0},
		{2, 0, 104, 16, 19, 0, 31, 8, 2, 1, 0},
		{10, 0, 118, 0, 19, 12, 31, 8, 1, 0, 1},
		{6, 0, 127, 0, 21, 0, 31, 8, 1, 0, 0},
	}},
	{Name: "jagged EP", Algorithm: 6, Feedback: 5, LFOFreq: 2, Tremolo: 2, Op: [4]OperatorPatch{
		{7, -3, 113, 0, 22, 11, 31, 10, 1, 0, 0},
		{3, -1, 120, 0, 23, 11, 31, 8, 1, 0, 0},
		{14, 3, 125, 25, 22, 11, 31, 8, 1, 0, 1},
		{3, 1, 118, 0, 23, 11, 31, 8, 1, 0, 0},
	}},
	{Name: "all consuming", Algorithm: 5, Feedback: 5, LFOFreq: 3, Tremolo: 2, Op: [4]OperatorPatch{
		{1, 0, 120, 27, 30, 0, 7, 9, 1, 0, 0},
		{1, 0, 120, 28, 26, 3, 31, 7, 1, 0, 1},
		{4, 0, 120, 20, 8, 0, 31, 7, 1, 1, 0},
		{2, 0, 127, 24, 28, 10, 31, 7, 1, 0, 0},
	}},
	{Name: "one operator", Algorithm: 7, Op: [4]OperatorPatch{
		{2, 0, 0, 0, 31, 15, 31, 0, 0, 0, 0},
		{2, 0, 0, 0, 31, 15, 31, 0, 0, 0, 0},
		{2, 0, 0, 0, 31, 15, 31, 0, 0, 0, 0},
		{2, 0, 127, 0, 31, 15, 31, 0, 0, 0, 0},
	}},
	{Name: "squelchy", Algorithm: 1, Op: [4]OperatorPatch{
		{10, -3, 27, 18, 16, 0, 29, 7, 1, 0, 0},
		{8, 1, 112, 10, 0, 0, 29, 7, 2, 0, 0},
		{4, 3, 112, 20, 29, 0, 29, 7, 1, 0, 0},
		{2, 0, 127, 0, 25, 0, 29, 10, 2, 0, 0},
	}},
	{Name: "ugly bell", Algorithm: 6, Feedback: 4, Op: [4]OperatorPatch{
		{10, 0, 120, 0, 24, 0, 31, 8, 1, 0, 0},
		{1, 0, 120, 0, 19, 0, 31, 8, 1, 0, 0},
		{1, 0, 120, 0, 25, 0, 31, 6, 1, 0, 0},
		{1, 0, 127, 0, 13, 0, 31, 9, 1, 0, 0},
	}},
	{Name: "moving electric", Algorithm: 2, Feedback: 4, LFOFreq: 1, Tremolo: 1, Op: [4]OperatorPatch{
		{2, -3, 120, 14, 24, 0, 24, 9, 1, 0, 0},
		{6, 0, 111, 23, 23, 0, 23, 8, 2, 0, 1},
		{8, 3, 105, 0, 22, 8, 27, 8, 2, 7, 1},
		{4, 0, 125, 14, 31, 12, 31, 9, 0, 0, 0},
	}},
	{Name: "wurly slow dance", Algorithm: 5, Feedback: 5, LFOFreq: 1, Tremolo: 2, Op: [4]OperatorPatch{
		{4, 2, 113, 0, 23, 0, 31, 7, 0, 0, 0},
		{2, -1, 114, 23, 24, 0, 31, 7, 2, 0, 1},
		{10, 1, 109, 21, 26, 0, 31, 9, 1, 3, 0},
		{2, 0, 127, 0, 27, 0, 31, 9, 0, 0, 0},
	}},
	{Name: "ambient banjo", Algorithm: 4, Feedback: 4, Op: [4]OperatorPatch{
		{4, 0, 105, 18, 20, 7, 24, 9, 0, 8, 0},
		{3, -1, 116, 0, 21, 0, 23, 9, 0, 0, 0},
		{7, 1, 102, 14, 17, 0, 23, 9, 0, 0, 0},
		{2, 0, 127, 0, 19, 0, 21, 9, 0, 0, 0},
	}},
}

// ApplyPatch loads a full preset: the mirror takes every value in one step
// and the returned sequence rewrites every affected register. The order is
// fixed (channel settings, LFO, sensitivity, then operator by operator) so
// applying the same patch twice yields byte-identical sequences.
func (p *Parameters) ApplyPatch(pt Patch) []Write {
	p.Algorithm = pt.Algorithm
	p.Feedback = pt.Feedback
	p.LFOFreq = pt.LFOFreq
	p.Vibrato = pt.Vibrato
	p.Tremolo = pt.Tremolo
	for i, o := range pt.Op {
		p.Multiple[i] = o.Multiple
		p.Detune[i] = o.Detune
		p.TotalLevel[i] = o.TotalLevel
		p.Attack[i] = o.Attack
		p.Decay[i] = o.Decay
		p.SustainLevel[i] = o.SustainLevel
		p.SustainRate[i] = o.SustainRate
		p.Release[i] = o.Release
		p.RateScale[i] = o.RateScale
		p.SSGEG[i] = o.SSGEG
		p.AMOn[i] = o.AMOn
	}

	w := p.Writes(ParamAlgorithm, 0)
	w = append(w, p.Writes(ParamLFOFreq, 0)...)
	w = append(w, p.Writes(ParamVibrato, 0)...)
	for op := range pt.Op {
		w = append(w, p.Writes(ParamMultiple, op)...)
		w = append(w, p.Writes(ParamTotalLevel, op)...)
		w = append(w, p.Writes(ParamAttack, op)...)
		w = append(w, p.Writes(ParamDecay, op)...)
		w = append(w, p.Writes(ParamSustainLevel, op)...)
		w = append(w, p.Writes(ParamSustainRate, op)...)
		w = append(w, p.Writes(ParamSSGEG, op)...)
	}
	return w
}
