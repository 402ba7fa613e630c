package controller

import "github.com/boneycircuitry/megamega2612/ym2612"

// PinState is a snapshot of the four interface pins: encoder quadrature
// plus two buttons. Levels are raw; the idle pull-up level is true, so a
// pressed button reads false.
type PinState struct {
	EncA, EncB bool
	BtnL, BtnR bool
}

// panelState tracks the interaction state machine between pin events:
// the current selection plus the previous pin levels and the latch that
// arms a group change.
type panelState struct {
	group   int
	current int // parameter slot within the group
	op      int // operator the per-op parameters address

	encA, encB bool
	btnL, btnR bool
	groupOK    bool
}

// handlePins classifies one pin event. The quadrature pair and the
// buttons multiplex four actions onto one encoder: a bare turn adjusts
// the selected value, a turn with Left held moves the parameter slot, a
// turn with Right held moves the operator, and a press-and-release with
// no turn in between steps the group. The groupOK latch arms on any
// press and disarms on any turn, so a hold-and-turn never also switches
// group on release.
func (c *Controller) handlePins(ps PinState) {
	p := &c.panel

	if !ps.BtnL || !ps.BtnR {
		p.groupOK = true
	}

	if ps.EncA == p.encA && ps.EncB == p.encB {
		// button-only event; group steps on release, not press
		if p.groupOK {
			if ps.BtnL && !p.btnL {
				p.group--
				c.changeGroup()
			}
			if ps.BtnR && !p.btnR {
				p.group++
				c.changeGroup()
			}
		}
		p.btnL, p.btnR = ps.BtnL, ps.BtnR
		return
	}

	p.groupOK = false

	// classify on a single quadrature transition per detent
	if ps.EncB && !ps.EncA {
		ccw := p.encB == ps.EncA && p.encA != ps.EncB
		cw := p.encA == ps.EncB && p.encB != ps.EncA

		delta := 0
		if ccw {
			delta = -1
		} else if cw {
			delta = 1
		}

		if delta != 0 {
			switch {
			case !ps.BtnL:
				p.current += delta
				c.changeCurrent()
			case !ps.BtnR:
				p.op += delta
				c.changeCurrent()
			default:
				c.adjustValue(delta)
			}
		}
	}

	p.encA, p.encB = ps.EncA, ps.EncB
	p.btnL, p.btnR = ps.BtnL, ps.BtnR
}

// changeGroup wraps the group index and lands on the group's first
// parameter.
func (c *Controller) changeGroup() {
	p := &c.panel
	p.group = ym2612.Wrap(p.group, 0, ym2612.NumGroups-1)
	p.current = 0
	c.showSelection()
}

// changeCurrent wraps the operator and parameter-slot indexes into range
// for the current group.
func (c *Controller) changeCurrent() {
	p := &c.panel
	p.op = ym2612.Wrap(p.op, 0, 3)
	p.current = ym2612.Wrap(p.current, 0, ym2612.GroupLen(p.group)-1)
	c.showSelection()
}

// adjustValue steps the selected parameter and sends the register writes
// asserting its new value.
func (c *Controller) adjustValue(delta int) {
	p := &c.panel
	pr := ym2612.GroupParam(p.group, p.current)
	for _, w := range c.params.Adjust(pr, p.op, delta) {
		c.send(w)
	}
	c.showSelection()
}
