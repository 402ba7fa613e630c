package ym2612

// Param identifies one adjustable parameter on the front panel.
type Param uint8

const (
	ParamPatch Param = iota
	ParamVelSens
	ParamMinVel
	ParamPolyphony

	ParamAlgorithm
	ParamFeedback
	ParamMultiple
	ParamDetune
	ParamTotalLevel

	ParamAttack
	ParamDecay
	ParamSustainLevel
	ParamSustainRate
	ParamRelease
	ParamRateScale
	ParamSSGEG

	ParamLFOFreq
	ParamVibrato
	ParamTremolo
	ParamAMOn

	paramCount
)

// Parameters is the in-memory mirror of everything the unit has written to
// the chip, plus the play settings that never leave the controller. Every
// mutation goes through Adjust or ApplyPatch, which return the register
// writes asserting the new state, so the mirror and the chip cannot
// quietly diverge.
type Parameters struct {
	Patch     int
	VelSens   int // 0 all preset level .. 10 all velocity
	MinVel    int // floor applied to incoming note velocity
	Polyphony int

	Algorithm  int
	Feedback   int
	Multiple   [4]int
	Detune     [4]int // -3..+3
	TotalLevel [4]int // loudness 0-127, inverted to attenuation on write

	Attack       [4]int
	Decay        [4]int
	SustainLevel [4]int
	SustainRate  [4]int
	Release      [4]int
	RateScale    [4]int
	SSGEG        [4]int // 0 off, 1-8 envelope shapes

	LFOFreq int // 0 off, 1-8 rate select
	Vibrato int
	Tremolo int
	AMOn    [4]int
}

// paramSpec carries everything the panel needs to know about one
// parameter: label, range, storage slot, display form, and register plan.
// Parameters without a writes func live only on the controller.
type paramSpec struct {
	label    string
	min, max int
	perOp    bool
	disp     displayKind
	value    func(p *Parameters, op int) *int
	writes   func(p *Parameters, op int) []Write
}

var paramSpecs = [paramCount]paramSpec{
	ParamPatch: {
		label: "preset patch", max: len(Patches) - 1, disp: dispPatch,
		value: func(p *Parameters, _ int) *int { return &p.Patch },
	},
	ParamVelSens: {
		label: "velocity sens", max: 10, disp: dispNumber,
		value: func(p *Parameters, _ int) *int { return &p.VelSens },
	},
	ParamMinVel: {
		label: "min velocity", max: 127, disp: dispNumber,
		value: func(p *Parameters, _ int) *int { return &p.MinVel },
	},
	ParamPolyphony: {
		label: "polyphony", max: 2, disp: dispPlayMode,
		value: func(p *Parameters, _ int) *int { return &p.Polyphony },
	},
	ParamAlgorithm: {
		label: "algorithm", max: 7, disp: dispAlgorithm,
		value: func(p *Parameters, _ int) *int { return &p.Algorithm },
		writes: func(p *Parameters, _ int) []Write {
			return RegOp{Base: RegAlgFeedback, Shift2: 3, AllChan: true}.
				Writes(0, p.Algorithm, p.Feedback)
		},
	},
	ParamFeedback: {
		label: "feedback", max: 7, disp: dispNumber,
		value: func(p *Parameters, _ int) *int { return &p.Feedback },
		writes: func(p *Parameters, _ int) []Write {
			return RegOp{Base: RegAlgFeedback, Shift1: 3, AllChan: true}.
				Writes(0, p.Feedback, p.Algorithm)
		},
	},
	ParamMultiple: {
		label: "freq mult", max: 15, perOp: true, disp: dispMultiple,
		value: func(p *Parameters, op int) *int { return &p.Multiple[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegDetuneMultiple, Shift2: 4, Mode: PackBias2, PerOp: true, AllChan: true}.
				Writes(op, p.Multiple[op], p.Detune[op])
		},
	},
	ParamDetune: {
		label: "detune", min: -3, max: 3, perOp: true, disp: dispOpNumber,
		value: func(p *Parameters, op int) *int { return &p.Detune[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegDetuneMultiple, Shift1: 4, Mode: PackBias1, PerOp: true, AllChan: true}.
				Writes(op, p.Detune[op], p.Multiple[op])
		},
	},
	ParamTotalLevel: {
		label: "level", max: 127, perOp: true, disp: dispOpNumber,
		value: func(p *Parameters, op int) *int { return &p.TotalLevel[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegTotalLevel, Mode: PackLevelInvert, Ceil1: 127, PerOp: true, AllChan: true}.
				Writes(op, p.TotalLevel[op], 0)
		},
	},
	ParamAttack: {
		label: "attack", max: 31, perOp: true, disp: dispOpNumber,
		value: func(p *Parameters, op int) *int { return &p.Attack[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegRateScaleAttack, Shift2: 6, Mode: PackInvert1, Ceil1: 31, PerOp: true, AllChan: true}.
				Writes(op, p.Attack[op], p.RateScale[op])
		},
	},
	ParamDecay: {
		label: "decay", max: 31, perOp: true, disp: dispOpNumber,
		value: func(p *Parameters, op int) *int { return &p.Decay[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegAMDecay, Shift2: 7, Mode: PackInvert1, Ceil1: 31, PerOp: true, AllChan: true}.
				Writes(op, p.Decay[op], p.AMOn[op])
		},
	},
	ParamSustainLevel: {
		label: "sust level", max: 15, perOp: true, disp: dispOpNumber,
		value: func(p *Parameters, op int) *int { return &p.SustainLevel[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegSustainRelease, Shift1: 4, Mode: PackInvertBoth, Ceil1: 15, Ceil2: 15, PerOp: true, AllChan: true}.
				Writes(op, p.SustainLevel[op], p.Release[op])
		},
	},
	ParamSustainRate: {
		label: "sust rate", max: 31, perOp: true, disp: dispOpNumber,
		value: func(p *Parameters, op int) *int { return &p.SustainRate[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegSustainRate, Mode: PackRateInvert, Ceil1: 31, PerOp: true, AllChan: true}.
				Writes(op, p.SustainRate[op], 0)
		},
	},
	ParamRelease: {
		label: "release", max: 15, perOp: true, disp: dispOpNumber,
		value: func(p *Parameters, op int) *int { return &p.Release[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegSustainRelease, Shift2: 4, Mode: PackInvertBoth, Ceil1: 15, Ceil2: 15, PerOp: true, AllChan: true}.
				Writes(op, p.Release[op], p.SustainLevel[op])
		},
	},
	ParamRateScale: {
		label: "rate scale", max: 3, perOp: true, disp: dispOpNumber,
		value: func(p *Parameters, op int) *int { return &p.RateScale[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegRateScaleAttack, Shift1: 6, Mode: PackInvert2, Ceil2: 31, PerOp: true, AllChan: true}.
				Writes(op, p.RateScale[op], p.Attack[op])
		},
	},
	ParamSSGEG: {
		label: "SSGEG", max: 8, perOp: true, disp: dispSSGEG,
		value: func(p *Parameters, op int) *int { return &p.SSGEG[op] },
		writes: func(p *Parameters, op int) []Write {
			// value 0 clears the register outright; shapes are stored
			// off by one with the enable bit alongside
			if p.SSGEG[op] == 0 {
				return RegOp{Base: RegSSGEG, Shift2: 3, Mode: PackRaw, PerOp: true, AllChan: true}.
					Writes(op, 0, 0)
			}
			return RegOp{Base: RegSSGEG, Shift2: 3, PerOp: true, AllChan: true}.
				Writes(op, p.SSGEG[op]-1, 1)
		},
	},
	ParamLFOFreq: {
		label: "LFO frequency", max: 8, disp: dispLFO,
		value: func(p *Parameters, _ int) *int { return &p.LFOFreq },
		writes: func(p *Parameters, _ int) []Write {
			if p.LFOFreq == 0 {
				return RegOp{Base: RegLFO, Shift2: 3}.Writes(0, 0, 0)
			}
			return RegOp{Base: RegLFO, Shift2: 3}.Writes(0, p.LFOFreq-1, 1)
		},
	},
	ParamVibrato: {
		label: "vibrato", max: 7, disp: dispNumber,
		value: func(p *Parameters, _ int) *int { return &p.Vibrato },
		writes: func(p *Parameters, _ int) []Write {
			return RegOp{Base: RegStereoSens, Shift2: 4, Mode: PackPanned, AllChan: true}.
				Writes(0, p.Vibrato, p.Tremolo)
		},
	},
	ParamTremolo: {
		label: "AM sensitivity", max: 3, disp: dispNumber,
		value: func(p *Parameters, _ int) *int { return &p.Tremolo },
		writes: func(p *Parameters, _ int) []Write {
			return RegOp{Base: RegStereoSens, Shift1: 4, Mode: PackPanned, AllChan: true}.
				Writes(0, p.Tremolo, p.Vibrato)
		},
	},
	ParamAMOn: {
		label: "AM", max: 1, perOp: true, disp: dispOnOff,
		value: func(p *Parameters, op int) *int { return &p.AMOn[op] },
		writes: func(p *Parameters, op int) []Write {
			return RegOp{Base: RegAMDecay, Shift1: 7, Mode: PackInvert2, Ceil2: 31, PerOp: true, AllChan: true}.
				Writes(op, p.AMOn[op], p.Decay[op])
		},
	},
}

// panelGroups lists the parameter slots of the four panel groups, in panel
// order: play settings, tone, envelope, LFO.
var panelGroups = [4][]Param{
	{ParamPatch, ParamVelSens, ParamMinVel, ParamPolyphony},
	{ParamAlgorithm, ParamFeedback, ParamMultiple, ParamDetune, ParamTotalLevel},
	{ParamAttack, ParamDecay, ParamSustainLevel, ParamSustainRate, ParamRelease, ParamRateScale, ParamSSGEG},
	{ParamLFOFreq, ParamVibrato, ParamTremolo, ParamAMOn},
}

// NumGroups is the number of panel groups.
const NumGroups = 4

// GroupLen returns the number of parameter slots in a panel group.
func GroupLen(group int) int { return len(panelGroups[group]) }

// GroupParam returns the parameter at a slot of a panel group.
func GroupParam(group, index int) Param { return panelGroups[group][index] }

// Value returns the current value of a parameter for the given operator.
// The operator is ignored for channel and global parameters.
func (p *Parameters) Value(pr Param, op int) int {
	return *paramSpecs[pr].value(p, op)
}

// Writes returns the register sequence asserting a parameter's current
// value. Parameters that live only on the controller return nil.
func (p *Parameters) Writes(pr Param, op int) []Write {
	s := &paramSpecs[pr]
	if s.writes == nil {
		return nil
	}
	return s.writes(p, op)
}

// Adjust moves a parameter by delta, wraps it into range, and returns the
// register writes asserting the new value. Stepping the patch parameter
// loads the newly selected preset outright.
func (p *Parameters) Adjust(pr Param, op, delta int) []Write {
	s := &paramSpecs[pr]
	v := s.value(p, op)
	*v = Wrap(*v+delta, s.min, s.max)
	if pr == ParamPatch {
		return p.ApplyPatch(Patches[p.Patch])
	}
	return p.Writes(pr, op)
}
