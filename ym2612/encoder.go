package ym2612

// PackMode selects how one or two parameter values combine into a single
// register byte. Each register family packs differently; the set below
// covers every register the unit writes.
type PackMode uint8

const (
	// PackPlain ORs both values together after shifting.
	PackPlain PackMode = iota
	// PackInvert1 inverts value 1 against its ceiling before shifting.
	// Used where the register runs opposite to the user-facing parameter.
	PackInvert1
	// PackInvert2 inverts value 2 only.
	PackInvert2
	// PackInvertBoth inverts both values against their ceilings.
	PackInvertBoth
	// PackRaw passes value 1 through unshifted.
	PackRaw
	// PackBias1 offsets value 1 by +3 before shifting, storing a signed
	// -3..+3 range in an unsigned field.
	PackBias1
	// PackBias2 offsets value 2 by +3 before shifting.
	PackBias2
	// PackRateInvert writes ceiling1-value1 alone. Sustain rate.
	PackRateInvert
	// PackPanned is PackPlain with both pan bits forced on, for the
	// stereo/sensitivity register family.
	PackPanned
	// PackLevelInvert writes ceiling1-value1 alone. Total level, where the
	// ceiling is the full 7-bit range.
	PackLevelInvert
)

// pack combines v1 and v2 into one register byte. Arithmetic happens in
// int and truncates on conversion, so out-of-range preset data folds into
// the byte instead of faulting.
func (m PackMode) pack(v1, v2 int, shift1, shift2 uint8, ceil1, ceil2 int) uint8 {
	switch m {
	case PackPlain:
		return uint8(v1<<shift1 + v2<<shift2)
	case PackInvert1:
		return uint8((ceil1-v1)<<shift1 + v2<<shift2)
	case PackInvert2:
		return uint8(v1<<shift1 + (ceil2-v2)<<shift2)
	case PackInvertBoth:
		return uint8((ceil1-v1)<<shift1 + (ceil2-v2)<<shift2)
	case PackRaw:
		return uint8(v1)
	case PackBias1:
		return uint8((v1+3)<<shift1 + v2<<shift2)
	case PackBias2:
		return uint8(v1<<shift1 + (v2+3)<<shift2)
	case PackRateInvert, PackLevelInvert:
		return uint8(ceil1 - v1)
	case PackPanned:
		return uint8(0xC0 + v1<<shift1 + v2<<shift2)
	default:
		return uint8(v1)
	}
}

// RegOp describes how one logical parameter reaches the register file:
// where it lives, how its values pack, and how far the write fans out.
type RegOp struct {
	Base    uint8 // base register address
	Shift1  uint8 // bit position of value 1
	Shift2  uint8 // bit position of value 2
	Mode    PackMode
	Ceil1   int  // inversion ceiling for value 1
	Ceil2   int  // inversion ceiling for value 2
	PerOp   bool // offset Base by the operator stride
	AllChan bool // fan out to every channel in both banks
}

// Writes encodes the value pair for operator op into its write sequence.
// Fan-out order is fixed: bank 1-3 in register order, then bank 4-6, so
// identical parameter changes always produce identical sequences. Without
// AllChan a single bank-A write goes out; only the global LFO register
// takes that path.
func (o RegOp) Writes(op, v1, v2 int) []Write {
	if !o.AllChan {
		return []Write{{Group13, o.Base, uint8(v1 + v2<<o.Shift2)}}
	}
	reg := o.Base
	if o.PerOp {
		reg += opOffset[op]
	}
	data := o.Mode.pack(v1, v2, o.Shift1, o.Shift2, o.Ceil1, o.Ceil2)
	w := make([]Write, 0, 6)
	for _, g := range [2]Group{Group13, Group46} {
		for i := uint8(0); i < 3; i++ {
			w = append(w, Write{g, reg + i, data})
		}
	}
	return w
}
