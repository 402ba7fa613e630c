package ym2612

import "strconv"

// displayKind selects how a parameter value is rendered on the panel.
type displayKind int

const (
	dispNumber    displayKind = iota // plain number
	dispOpNumber                     // plain number, op prefix
	dispMultiple                     // 0 shows as 0.5
	dispAlgorithm                    // routing diagram
	dispOnOff                        // OFF / ON
	dispLFO                          // OFF / rate in Hz
	dispSSGEG                        // OFF / loop shape
	dispPatch                        // preset name
	dispPlayMode                     // voice allocation mode
)

// algorithmNames are routing diagrams sized for the 16-column panel line.
// '>' feeds modulator into carrier, '~' marks an audible output, '&' sums.
var algorithmNames = [8]string{
	"1 > 2 > 3 > 4~",
	"1 & 2 > 3 > 4~",
	"(2 > 3) & 1 > 4~",
	"(1 > 2) & 3 > 4~",
	"1 > 2~, 3 > 4~",
	"1 > (2 & 3 & 4)~",
	"1 > 3~, 2~, 4~",
	"1~, 2~, 3~, 4~",
}

var ssgegNames = [9]string{
	"OFF",
	"forward loop",
	"one shot + low",
	"forward+rev loop",
	"one shot + high",
	"reverse loop",
	"reverse + high",
	"rev+forward loop",
	"reverse + low",
}

var lfoRates = [9]string{
	"OFF",
	"3.82 Hz",
	"5.33 Hz",
	"5.77 Hz",
	"6.11 Hz",
	"6.60 Hz",
	"9.23 Hz",
	"46.11 Hz",
	"69.22 Hz",
}

var onOffNames = [2]string{"OFF", "ON"}

var playModeNames = [3]string{"polyphonic", "mono retrig", "mono legato"}

// Display renders a parameter as a label/value pair for the panel.
// Per-operator labels carry an "op N" prefix, 1-based like the chip docs.
func (p *Parameters) Display(pr Param, op int) (label, value string) {
	spec := &paramSpecs[pr]
	v := *spec.value(p, op)

	label = spec.label
	if spec.perOp {
		label = "op " + strconv.Itoa(op+1) + " " + label
	}

	switch spec.disp {
	case dispMultiple:
		if v == 0 {
			return label, "0.5"
		}
	case dispAlgorithm:
		return label + " " + strconv.Itoa(v+1), algorithmNames[v]
	case dispOnOff:
		return label, onOffNames[v]
	case dispLFO:
		return label, lfoRates[v]
	case dispSSGEG:
		return label, ssgegNames[v]
	case dispPatch:
		return label, Patches[v].Name
	case dispPlayMode:
		return label, playModeNames[v]
	}
	return label, strconv.Itoa(v)
}
